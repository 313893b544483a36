package systems

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/yohamta/donburi"
)

// ApplyDamage lowers health, never below zero, and starts the hit flash and
// the grace window. It returns true when this hit defeated the fighter.
// Damage to an already defeated fighter is ignored.
func ApplyDamage(w donburi.World, e *donburi.Entry, amount int) bool {
	fighter := components.Fighter.Get(e)
	if fighter.Defeated {
		return false
	}
	rules := RulesOf(w)

	hp := components.Health.Get(e)
	hp.Current = max(0, hp.Current-max(0, amount))

	startFlash(e, rules.Combat.HitFlashTicks)
	fighter.GraceTicks = rules.Combat.GraceTicks

	if hp.Current == 0 {
		fighter.Defeated = true
		return true
	}
	return false
}

func resolveRangedHits(w donburi.World, e, opponent *donburi.Entry, rules *cfg.Config) {
	fighter := components.Fighter.Get(e)
	target := BoundingBoxOf(opponent)

	for _, p := range fighter.Projectiles {
		TickProjectile(p, rules.Arena.Width)
		if !ProjectileHits(p, target) || !nearby(p, opponent) {
			continue
		}
		projectile := components.Projectile.Get(p)
		projectile.Active = false
		if projectile.Swing != 0 && projectile.Swing == fighter.Swing {
			// One swing damages once, whichever of its hits connects first.
			if fighter.SwingLanded {
				continue
			}
			fighter.SwingLanded = true
		}
		landHit(w, e, opponent, rules.Combat.RangedDamage, true)
		knockback(opponent, projectile.Direction, rules.Combat.RangedKnockback, rules)
		target = BoundingBoxOf(opponent)
	}
}

// resolveMeleeHit lands the current swing at most once, counting a hit by the
// swing's own projectile, and never while the opponent is inside its grace
// window.
func resolveMeleeHit(w donburi.World, e, opponent *donburi.Entry, rules *cfg.Config) {
	fighter := components.Fighter.Get(e)
	if !fighter.Attacking || fighter.SwingLanded {
		return
	}
	if components.Fighter.Get(opponent).GraceTicks > 0 {
		return
	}
	if !nearby(e, opponent) || !BoundingBoxOf(e).Overlaps(BoundingBoxOf(opponent)) {
		return
	}

	fighter.SwingLanded = true
	landHit(w, e, opponent, rules.Combat.MeleeDamage, false)
	knockback(opponent, fighter.Facing, rules.Combat.MeleeKnockback, rules)
}

func landHit(w donburi.World, attacker, target *donburi.Entry, damage int, ranged bool) {
	if components.Fighter.Get(target).Defeated {
		return
	}
	defeated := ApplyDamage(w, target, damage)

	match := MatchOf(w)
	if match == nil {
		return
	}
	ev := messages.CombatEvent{
		Kind:     messages.EventHit,
		Tick:     match.Tick,
		Attacker: components.Fighter.Get(attacker).Role,
		Target:   components.Fighter.Get(target).Role,
		Damage:   damage,
		Ranged:   ranged,
		Health:   components.Health.Get(target).Current,
	}
	match.Events = append(match.Events, ev)
	if defeated {
		ev.Kind = messages.EventDefeat
		match.Events = append(match.Events, ev)
	}
}
