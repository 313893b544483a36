package systems

import (
	"testing"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/gamemath"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileTravelsAndLeavesArena(t *testing.T) {
	d := newDuel(t)
	p := factory.CreateProjectile(d.ecs, d.rules, cfg.RoleP1, 334, 500, cfg.FacingLeft)

	for i := 1; i <= 22; i++ {
		TickProjectile(p, d.rules.Arena.Width)
		require.True(t, components.Projectile.Get(p).Active, "tick %d", i)
		assert.InDelta(t, 334-15*float64(i), components.Position.Get(p).X, 1e-9)
	}

	TickProjectile(p, d.rules.Arena.Width)
	assert.False(t, components.Projectile.Get(p).Active)

	x := components.Position.Get(p).X
	TickProjectile(p, d.rules.Arena.Width)
	assert.Equal(t, x, components.Position.Get(p).X, "inactive projectiles stay put")
}

func TestProjectileHitsIsPureAndFalseWhenInactive(t *testing.T) {
	d := newDuel(t)
	p := factory.CreateProjectile(d.ecs, d.rules, cfg.RoleP1, 100, 100, cfg.FacingRight)
	target := gamemath.Rect{X: 110, Y: 95, W: 50, H: 50}

	assert.True(t, ProjectileHits(p, target))
	assert.True(t, ProjectileHits(p, target))
	assert.Equal(t, 100.0, components.Position.Get(p).X)

	assert.False(t, ProjectileHits(p, gamemath.Rect{X: 115, Y: 95, W: 50, H: 50}), "touching edge")

	components.Projectile.Get(p).Active = false
	assert.False(t, ProjectileHits(p, target))
}

func TestRangedHitDamagesAndDeactivates(t *testing.T) {
	d := newDuel(t)
	require.True(t, TriggerMeleeAttack(d.ecs, d.p1))
	p := components.Fighter.Get(d.p1).Projectiles[0]
	x2 := components.Position.Get(d.p2).X

	hitTick := 0
	for i := 1; i <= 40 && hitTick == 0; i++ {
		d.tick(1)
		if eventsOf(d.match, true) > 0 {
			hitTick = i
		}
	}

	// 434 + 15k must pass the left edge of P2's box at 852.25.
	assert.Equal(t, 27, hitTick)
	assert.Equal(t, 90, components.Health.Get(d.p2).Current)
	assert.Equal(t, x2+d.rules.Combat.RangedKnockback, components.Position.Get(d.p2).X)
	assert.False(t, components.Projectile.Get(p).Active)
	assert.Len(t, components.Fighter.Get(d.p1).Projectiles, 1, "swept on the owner's next tick")

	d.tick(1)
	assert.Empty(t, components.Fighter.Get(d.p1).Projectiles)
	assert.False(t, d.ecs.World.Valid(p.Entity()))
}

func TestRangedHitIgnoresGrace(t *testing.T) {
	d := newDuel(t)
	components.Fighter.Get(d.p2).GraceTicks = 1000
	FireRanged(d.ecs, d.p1)

	d.tick(30)

	assert.Equal(t, 90, components.Health.Get(d.p2).Current)
}

func TestProjectilesKeepFiredOrder(t *testing.T) {
	d := newDuel(t)
	components.Fighter.Get(d.p1).Facing = cfg.FacingLeft
	a := FireRanged(d.ecs, d.p1)
	d.tick(3)
	b := FireRanged(d.ecs, d.p1)

	snap := BuildSnapshot(d.ecs.World)
	require.Len(t, snap.Projectiles, 2)
	assert.Equal(t, components.Position.Get(a).X, snap.Projectiles[0].X)
	assert.Equal(t, components.Position.Get(b).X, snap.Projectiles[1].X)
	assert.Equal(t, cfg.FacingLeft, snap.Projectiles[0].Direction)
	assert.Equal(t, cfg.RoleP1, snap.Projectiles[1].Role)
}
