package systems

import (
	"testing"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type duel struct {
	ecs   *ecs.ECS
	rules *cfg.Config
	match *components.MatchData
	p1    *donburi.Entry
	p2    *donburi.Entry
}

func newDuel(t *testing.T, tune ...func(*cfg.Config)) *duel {
	t.Helper()
	rules := cfg.Default()
	for _, f := range tune {
		f(&rules)
	}
	require.NoError(t, rules.Validate())

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(UpdateFighters)
	e.AddSystem(UpdateMatch)
	factory.CreateMatch(e, rules, "test", 1)

	m := MatchOf(e.World)
	return &duel{ecs: e, rules: RulesOf(e.World), match: m, p1: m.P1, p2: m.P2}
}

func (d *duel) tick(n int) {
	for range n {
		d.ecs.Update()
	}
}

func (d *duel) place(e *donburi.Entry, x float64) {
	components.Position.Get(e).X = x
	syncObject(e)
}

// openSwing puts e in its attack window without firing a projectile.
func (d *duel) openSwing(e *donburi.Entry) {
	f := components.Fighter.Get(e)
	f.Attacking = true
	f.AttackTicks = d.rules.Combat.AttackTicks
	f.Swing++
	f.SwingLanded = false
	refreshAnimation(e)
}

func eventsOf(m *components.MatchData, ranged bool) int {
	n := 0
	for _, ev := range m.Events {
		if ev.Kind == messages.EventHit && ev.Ranged == ranged {
			n++
		}
	}
	return n
}

func TestCreateFighterDefaults(t *testing.T) {
	d := newDuel(t)

	for _, e := range []*donburi.Entry{d.p1, d.p2} {
		f := components.Fighter.Get(e)
		pos := components.Position.Get(e)
		assert.Equal(t, d.rules.SpawnX(f.Role), pos.X)
		assert.Equal(t, d.rules.GroundY(), pos.Y)
		assert.Equal(t, f.Role.DefaultFacing(), f.Facing)
		assert.Equal(t, d.rules.Fighter.MaxHealth, components.Health.Get(e).Current)
		assert.False(t, f.Attacking)
		assert.False(t, components.Physics.Get(e).Airborne)
		assert.Empty(t, f.Projectiles)
	}
	assert.Equal(t, cfg.RoleP1, components.Fighter.Get(d.p1).Role)
	assert.Equal(t, cfg.RoleP2, components.Fighter.Get(d.p2).Role)
}

func TestMovementClampedToPadding(t *testing.T) {
	d := newDuel(t)

	SetMoveIntent(d.ecs.World, d.p1, cfg.FacingLeft, true)
	d.tick(200)
	assert.Equal(t, d.rules.MinX(), components.Position.Get(d.p1).X)
	assert.Equal(t, cfg.FacingLeft, components.Fighter.Get(d.p1).Facing)

	SetMoveIntent(d.ecs.World, d.p1, cfg.FacingLeft, false)
	SetMoveIntent(d.ecs.World, d.p1, cfg.FacingRight, true)
	d.tick(300)
	assert.Equal(t, d.rules.MaxX(), components.Position.Get(d.p1).X)
	assert.Equal(t, cfg.FacingRight, components.Fighter.Get(d.p1).Facing)
}

func TestBothLatchesCancel(t *testing.T) {
	d := newDuel(t)
	x := components.Position.Get(d.p1).X

	SetMoveIntent(d.ecs.World, d.p1, cfg.FacingLeft, true)
	SetMoveIntent(d.ecs.World, d.p1, cfg.FacingRight, true)
	d.tick(5)

	assert.Equal(t, x, components.Position.Get(d.p1).X)
}

func TestJumpLandsAndRevertsAnimation(t *testing.T) {
	d := newDuel(t)

	require.True(t, TriggerJump(d.ecs.World, d.p1))
	assert.True(t, components.Physics.Get(d.p1).Airborne)
	assert.False(t, TriggerJump(d.ecs.World, d.p1), "no double jump")

	d.tick(1)
	assert.Equal(t, cfg.AnimAirborne, components.Animation.Get(d.p1).State)
	assert.Less(t, components.Position.Get(d.p1).Y, d.rules.GroundY())

	landed := false
	for range 60 {
		d.tick(1)
		if !components.Physics.Get(d.p1).Airborne {
			landed = true
			break
		}
	}
	require.True(t, landed)
	assert.Equal(t, d.rules.GroundY(), components.Position.Get(d.p1).Y)
	assert.Zero(t, components.Physics.Get(d.p1).VelocityY)
	assert.Equal(t, cfg.AnimIdleRun, components.Animation.Get(d.p1).State)
}

func TestMeleeAttackIsIdempotentWithinWindow(t *testing.T) {
	d := newDuel(t)

	require.True(t, TriggerMeleeAttack(d.ecs, d.p1))
	assert.False(t, TriggerMeleeAttack(d.ecs, d.p1))

	f := components.Fighter.Get(d.p1)
	assert.Len(t, f.Projectiles, 1)
	assert.True(t, f.Attacking)
	assert.Equal(t, cfg.AnimAttacking, components.Animation.Get(d.p1).State)
	assert.Equal(t, 0, components.Animation.Get(d.p1).Frame())
}

func TestAttackWindowEnds(t *testing.T) {
	d := newDuel(t)
	require.True(t, TriggerMeleeAttack(d.ecs, d.p1))

	d.tick(d.rules.Combat.AttackTicks - 1)
	assert.True(t, components.Fighter.Get(d.p1).Attacking)

	d.tick(1)
	assert.False(t, components.Fighter.Get(d.p1).Attacking)
	assert.Equal(t, cfg.AnimIdleRun, components.Animation.Get(d.p1).State)

	assert.True(t, TriggerMeleeAttack(d.ecs, d.p1), "a new window can start")
}

func TestAirborneMeleePolicy(t *testing.T) {
	d := newDuel(t, func(c *cfg.Config) { c.Combat.AllowAirborneMelee = false })
	require.True(t, TriggerJump(d.ecs.World, d.p1))
	assert.False(t, TriggerMeleeAttack(d.ecs, d.p1))
	assert.Empty(t, components.Fighter.Get(d.p1).Projectiles)

	d = newDuel(t)
	require.True(t, TriggerJump(d.ecs.World, d.p1))
	assert.True(t, TriggerMeleeAttack(d.ecs, d.p1))
	assert.Equal(t, cfg.AnimAttacking, components.Animation.Get(d.p1).State, "attacking wins over airborne")
}

func TestMeleeDefeatsWoundedOpponent(t *testing.T) {
	d := newDuel(t)
	d.place(d.p2, components.Position.Get(d.p1).X+80)
	components.Health.Get(d.p2).Current = 10
	d.openSwing(d.p1)

	d.tick(1)

	assert.Equal(t, 0, components.Health.Get(d.p2).Current)
	assert.True(t, components.Fighter.Get(d.p2).Defeated)
	assert.Equal(t, cfg.MatchOver, d.match.State)
	assert.Equal(t, cfg.RoleP1, d.match.Winner)

	require.Len(t, d.match.Events, 2)
	assert.Equal(t, messages.EventHit, d.match.Events[0].Kind)
	assert.False(t, d.match.Events[0].Ranged)
	assert.Equal(t, messages.EventDefeat, d.match.Events[1].Kind)
}

func TestMeleeKnockbackAlongAttackerFacing(t *testing.T) {
	d := newDuel(t)
	x := components.Position.Get(d.p1).X + 80
	d.place(d.p2, x)
	d.openSwing(d.p1)

	d.tick(1)

	assert.Equal(t, 90, components.Health.Get(d.p2).Current)
	assert.Equal(t, x+d.rules.Combat.MeleeKnockback, components.Position.Get(d.p2).X)
	assert.True(t, components.Flash.Get(d.p2).Ticks > 0)
	assert.Equal(t, d.rules.Combat.GraceTicks-1, components.Fighter.Get(d.p2).GraceTicks)
}

func TestKnockbackClampedToPadding(t *testing.T) {
	d := newDuel(t)
	d.place(d.p1, d.rules.MaxX()-80)
	d.place(d.p2, d.rules.MaxX()-5)
	d.openSwing(d.p1)

	d.tick(1)

	assert.Equal(t, 90, components.Health.Get(d.p2).Current)
	assert.Equal(t, d.rules.MaxX(), components.Position.Get(d.p2).X)
}

func TestMeleeLandsOncePerSwing(t *testing.T) {
	d := newDuel(t, func(c *cfg.Config) {
		c.Combat.MeleeKnockback = 0
		c.Combat.GraceTicks = 0
	})
	d.place(d.p2, components.Position.Get(d.p1).X+80)
	d.openSwing(d.p1)

	hits := 0
	for range d.rules.Combat.AttackTicks {
		d.tick(1)
		hits += eventsOf(d.match, false)
	}

	assert.Equal(t, 1, hits)
	assert.Equal(t, 90, components.Health.Get(d.p2).Current)
}

func TestMeleeWaitsForGraceWindow(t *testing.T) {
	d := newDuel(t)
	d.place(d.p2, components.Position.Get(d.p1).X+80)
	components.Fighter.Get(d.p2).GraceTicks = 5
	d.openSwing(d.p1)

	d.tick(5)
	assert.Equal(t, 100, components.Health.Get(d.p2).Current)

	d.tick(1)
	assert.Equal(t, 90, components.Health.Get(d.p2).Current)
}

func TestSwingDamagesOnce(t *testing.T) {
	d := newDuel(t)
	d.place(d.p2, components.Position.Get(d.p1).X+80)
	require.True(t, TriggerMeleeAttack(d.ecs, d.p1))
	require.False(t, TriggerMeleeAttack(d.ecs, d.p1))

	ranged, melee := 0, 0
	for range d.rules.Combat.AttackTicks {
		d.tick(1)
		ranged += eventsOf(d.match, true)
		melee += eventsOf(d.match, false)
	}

	assert.Equal(t, 1, ranged, "the projectile connects first")
	assert.Zero(t, melee)
	assert.Len(t, components.Fighter.Get(d.p1).Projectiles, 0)
	assert.Equal(t, 90, components.Health.Get(d.p2).Current)
}

func TestProjectileHarmlessAfterItsSwingLanded(t *testing.T) {
	d := newDuel(t)
	require.True(t, TriggerMeleeAttack(d.ecs, d.p1))
	components.Fighter.Get(d.p1).SwingLanded = true
	p := components.Fighter.Get(d.p1).Projectiles[0]
	d.place(d.p2, components.Position.Get(p).X+20)

	d.tick(1)

	assert.False(t, components.Projectile.Get(p).Active)
	assert.Zero(t, eventsOf(d.match, true))
	assert.Equal(t, 100, components.Health.Get(d.p2).Current)
}

func TestOlderProjectileStillHitsDuringNewSwing(t *testing.T) {
	d := newDuel(t)
	old := FireRanged(d.ecs, d.p1)
	d.openSwing(d.p1)
	components.Fighter.Get(d.p1).SwingLanded = true
	d.place(d.p2, components.Position.Get(old).X+20)

	d.tick(1)

	assert.Equal(t, 1, eventsOf(d.match, true))
	assert.Equal(t, 90, components.Health.Get(d.p2).Current)
}

func TestMutatorsIgnoredWhenOver(t *testing.T) {
	d := newDuel(t)
	d.match.State = cfg.MatchOver

	SetMoveIntent(d.ecs.World, d.p1, cfg.FacingRight, true)
	assert.False(t, components.Fighter.Get(d.p1).MoveRight)
	assert.False(t, TriggerJump(d.ecs.World, d.p1))
	assert.False(t, TriggerMeleeAttack(d.ecs, d.p1))

	x := components.Position.Get(d.p1).X
	d.tick(3)
	assert.Equal(t, x, components.Position.Get(d.p1).X)
	assert.Zero(t, d.match.Tick)
}

func TestApplyDamageNeverBelowZero(t *testing.T) {
	d := newDuel(t)

	assert.False(t, ApplyDamage(d.ecs.World, d.p1, 30))
	assert.Equal(t, 70, components.Health.Get(d.p1).Current)

	assert.True(t, ApplyDamage(d.ecs.World, d.p1, 500))
	assert.Equal(t, 0, components.Health.Get(d.p1).Current)

	assert.False(t, ApplyDamage(d.ecs.World, d.p1, 10), "already defeated")
	assert.Equal(t, 0, components.Health.Get(d.p1).Current)
}

func TestHitFlashFadesOut(t *testing.T) {
	d := newDuel(t)
	ApplyDamage(d.ecs.World, d.p1, 10)

	flash := components.Flash.Get(d.p1)
	assert.Equal(t, d.rules.Combat.HitFlashTicks, flash.Ticks)
	assert.Equal(t, 1.0, flash.Intensity)

	d.tick(1)
	flash = components.Flash.Get(d.p1)
	assert.Less(t, flash.Intensity, 1.0)
	assert.Greater(t, flash.Intensity, 0.0)

	d.tick(d.rules.Combat.HitFlashTicks)
	flash = components.Flash.Get(d.p1)
	assert.Zero(t, flash.Ticks)
	assert.Zero(t, flash.Intensity)
}

func TestBothDownIsDraw(t *testing.T) {
	d := newDuel(t)
	components.Health.Get(d.p1).Current = 0
	components.Health.Get(d.p2).Current = 0

	UpdateMatch(d.ecs)

	assert.Equal(t, cfg.MatchOver, d.match.State)
	assert.Equal(t, cfg.RoleNone, d.match.Winner)
}

func TestAnimationStateOf(t *testing.T) {
	assert.Equal(t, cfg.AnimAttacking, AnimationStateOf(true, true))
	assert.Equal(t, cfg.AnimAttacking, AnimationStateOf(true, false))
	assert.Equal(t, cfg.AnimAirborne, AnimationStateOf(false, true))
	assert.Equal(t, cfg.AnimIdleRun, AnimationStateOf(false, false))
}
