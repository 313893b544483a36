package systems

import (
	"github.com/automoto/doomerang-duel/components"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/yohamta/donburi"
)

// BuildSnapshot copies the renderable state of the match. Projectiles are
// listed P1's first, each in fired order, active ones only.
func BuildSnapshot(w donburi.World) messages.Snapshot {
	match := MatchOf(w)
	if match == nil {
		return messages.Snapshot{}
	}

	snap := messages.Snapshot{
		MatchID: match.ID,
		Round:   match.Round,
		Tick:    match.Tick,
		State:   match.State,
		Winner:  match.Winner,
		Events:  append([]messages.CombatEvent(nil), match.Events...),
	}

	for i, e := range []*donburi.Entry{match.P1, match.P2} {
		snap.Fighters[i] = fighterSnapshot(e)
		for _, p := range components.Fighter.Get(e).Projectiles {
			projectile := components.Projectile.Get(p)
			if !projectile.Active {
				continue
			}
			pos := components.Position.Get(p)
			snap.Projectiles = append(snap.Projectiles, messages.ProjectileSnapshot{
				X:         pos.X,
				Y:         pos.Y,
				Direction: projectile.Direction,
				Role:      projectile.Owner,
				Box:       ProjectileBox(p),
			})
		}
	}

	return snap
}

func fighterSnapshot(e *donburi.Entry) messages.FighterSnapshot {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	pos := components.Position.Get(e)
	hp := components.Health.Get(e)
	anim := components.Animation.Get(e)
	flash := components.Flash.Get(e)

	return messages.FighterSnapshot{
		Role:           fighter.Role,
		X:              pos.X,
		Y:              pos.Y,
		Facing:         fighter.Facing,
		Animation:      anim.State,
		Frame:          anim.Frame(),
		Flashing:       flash.Ticks > 0,
		FlashIntensity: flash.Intensity,
		Health:         hp.Current,
		MaxHealth:      hp.Max,
		Airborne:       physics.Airborne,
		Attacking:      fighter.Attacking,
		Box:            BoundingBoxOf(e),
	}
}
