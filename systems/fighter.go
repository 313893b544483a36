package systems

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters advances the match by one tick: P1 acts first, then P2.
// Must run BEFORE UpdateMatch in the system order.
func UpdateFighters(ecs *ecs.ECS) {
	match := MatchOf(ecs.World)
	if match == nil || match.Over() {
		return
	}

	match.Tick++
	match.Events = match.Events[:0]

	TickFighter(ecs, match.P1, match.P2)
	TickFighter(ecs, match.P2, match.P1)
}

// TickFighter runs one step of e against opponent. Writes to the opponent
// (damage, knockback) happen inline.
func TickFighter(ecs *ecs.ECS, e, opponent *donburi.Entry) {
	rules := RulesOf(ecs.World)

	sweepProjectiles(ecs.World, e)

	applyVerticalPhysics(e, rules)
	applyHorizontalMovement(e, rules)
	syncObject(e)

	resolveRangedHits(ecs.World, e, opponent, rules)
	resolveMeleeHit(ecs.World, e, opponent, rules)

	updateCountdowns(e)
	updateAnimation(e)
	syncObject(e)
}

// SetMoveIntent latches or releases one movement direction.
func SetMoveIntent(w donburi.World, e *donburi.Entry, direction cfg.Facing, held bool) {
	if IsMatchOver(w) {
		return
	}
	fighter := components.Fighter.Get(e)
	if direction == cfg.FacingLeft {
		fighter.MoveLeft = held
	} else {
		fighter.MoveRight = held
	}
}

// TriggerMeleeAttack opens the attack window and fires a projectile. It
// reports false when the attack was suppressed.
func TriggerMeleeAttack(ecs *ecs.ECS, e *donburi.Entry) bool {
	if IsMatchOver(ecs.World) {
		return false
	}
	rules := RulesOf(ecs.World)
	fighter := components.Fighter.Get(e)
	if fighter.Attacking {
		return false
	}
	if !rules.Combat.AllowAirborneMelee && components.Physics.Get(e).Airborne {
		return false
	}

	fighter.Attacking = true
	fighter.AttackTicks = rules.Combat.AttackTicks
	fighter.Swing++
	fighter.SwingLanded = false
	refreshAnimation(e)

	FireRanged(ecs, e)
	return true
}

// FireRanged spawns a projectile in front of the fighter, traveling along its
// facing. Fired inside an attack window it belongs to that swing.
func FireRanged(ecs *ecs.ECS, e *donburi.Entry) *donburi.Entry {
	rules := RulesOf(ecs.World)
	fighter := components.Fighter.Get(e)
	pos := components.Position.Get(e)

	x := pos.X + fighter.Facing.Sign()*rules.Projectile.SpawnOffsetX
	y := pos.Y - rules.Projectile.SpawnOffsetY
	p := factory.CreateProjectile(ecs, rules, fighter.Role, x, y, fighter.Facing)

	fighter = components.Fighter.Get(e)
	if fighter.Attacking {
		components.Projectile.Get(p).Swing = fighter.Swing
	}
	fighter.Projectiles = append(fighter.Projectiles, p)
	return p
}

// TriggerJump launches a grounded fighter. It reports false while airborne.
func TriggerJump(w donburi.World, e *donburi.Entry) bool {
	if IsMatchOver(w) {
		return false
	}
	physics := components.Physics.Get(e)
	if physics.Airborne {
		return false
	}
	physics.VelocityY = -RulesOf(w).Fighter.JumpSpeed
	physics.Airborne = true
	refreshAnimation(e)
	return true
}

func updateCountdowns(e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	if fighter.Attacking {
		fighter.AttackTicks--
		if fighter.AttackTicks <= 0 {
			fighter.AttackTicks = 0
			fighter.Attacking = false
		}
	}
	if fighter.GraceTicks > 0 {
		fighter.GraceTicks--
	}
	updateFlash(e)
}
