package systems

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
)

// AnimationStateOf picks the single rendered state.
// Priority: Attacking > Airborne > IdleRun.
func AnimationStateOf(attacking, airborne bool) cfg.AnimationState {
	switch {
	case attacking:
		return cfg.AnimAttacking
	case airborne:
		return cfg.AnimAirborne
	default:
		return cfg.AnimIdleRun
	}
}

func refreshAnimation(e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	components.Animation.Get(e).SetAnimation(AnimationStateOf(fighter.Attacking, physics.Airborne))
	syncObject(e)
}

func updateAnimation(e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	anim := components.Animation.Get(e)
	anim.SetAnimation(AnimationStateOf(fighter.Attacking, physics.Airborne))
	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update()
	}
}
