package factory

import (
	"github.com/automoto/doomerang-duel/assets/animations"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
)

// GenerateAnimations creates an AnimationData component from a role's frame
// table. Attack and airborne strips play once and hold their last frame.
func GenerateAnimations(table *cfg.FrameTable, scale float64) *components.AnimationData {
	animData := &components.AnimationData{
		State: cfg.AnimIdleRun,
		Table: table,
		Scale: scale,
	}

	for state := cfg.AnimationState(0); state < cfg.AnimationStateCount; state++ {
		def := table[state]
		anim := animations.NewAnimation(def.Frames, def.FrameDelay)
		anim.FreezeOnComplete = state != cfg.AnimIdleRun
		animData.Animations[state] = anim
	}
	animData.CurrentAnimation = animData.Animations[cfg.AnimIdleRun]

	return animData
}
