package systems

import (
	"github.com/automoto/doomerang-duel/components"
	"github.com/automoto/doomerang-duel/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TickProjectile moves an active projectile one step and deactivates it the
// tick its x leaves [0, arenaWidth].
func TickProjectile(e *donburi.Entry, arenaWidth float64) {
	projectile := components.Projectile.Get(e)
	if !projectile.Active {
		return
	}
	pos := components.Position.Get(e)
	pos.X += projectile.Speed * projectile.Direction.Sign()
	if pos.X < 0 || pos.X > arenaWidth {
		projectile.Active = false
		return
	}
	syncObject(e)
}

// ProjectileBox returns the hit box centered on the projectile.
func ProjectileBox(e *donburi.Entry) gamemath.Rect {
	projectile := components.Projectile.Get(e)
	pos := components.Position.Get(e)
	return gamemath.CenteredBox(pos.X, pos.Y, projectile.Width, projectile.Height)
}

// ProjectileHits is false for inactive projectiles.
func ProjectileHits(e *donburi.Entry, target gamemath.Rect) bool {
	if !components.Projectile.Get(e).Active {
		return false
	}
	return ProjectileBox(e).Overlaps(target)
}

// sweepProjectiles destroys the fighter's inactive projectiles, keeping the
// fired order of the rest.
func sweepProjectiles(w donburi.World, e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	kept := fighter.Projectiles[:0]
	for _, p := range fighter.Projectiles {
		if components.Projectile.Get(p).Active {
			kept = append(kept, p)
			continue
		}
		destroyObject(w, p)
		w.Remove(p.Entity())
	}
	clear(fighter.Projectiles[len(kept):])
	fighter.Projectiles = kept
}
