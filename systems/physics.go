package systems

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/gamemath"
	"github.com/yohamta/donburi"
)

func applyVerticalPhysics(e *donburi.Entry, rules *cfg.Config) {
	physics := components.Physics.Get(e)
	if !physics.Airborne {
		return
	}
	pos := components.Position.Get(e)

	y, vy, landed := gamemath.ApplyGravity(pos.Y, physics.VelocityY, rules.Fighter.Gravity, rules.GroundY())
	pos.Y = y
	physics.VelocityY = vy
	if landed {
		physics.Airborne = false
	}
}

func applyHorizontalMovement(e *donburi.Entry, rules *cfg.Config) {
	fighter := components.Fighter.Get(e)
	pos := components.Position.Get(e)

	step := gamemath.HorizontalStep(fighter.MoveLeft, fighter.MoveRight)
	if step != 0 {
		fighter.Facing = cfg.Facing(step)
	}
	pos.X = gamemath.Clamp(pos.X+step*rules.Fighter.MoveSpeed, rules.MinX(), rules.MaxX())
}

// knockback pushes e along direction, keeping it inside the padding bounds.
func knockback(e *donburi.Entry, direction cfg.Facing, distance float64, rules *cfg.Config) {
	pos := components.Position.Get(e)
	pos.X = gamemath.Clamp(pos.X+direction.Sign()*distance, rules.MinX(), rules.MaxX())
	syncObject(e)
}
