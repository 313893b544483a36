package components

import (
	"github.com/automoto/doomerang-duel/assets/animations"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	State            cfg.AnimationState
	CurrentAnimation *animations.Animation
	Animations       [cfg.AnimationStateCount]*animations.Animation
	Table            *cfg.FrameTable // Sizes used by the bounding box
	Scale            float64
}

// SetAnimation switches to state, restarting its strip on change.
func (a *AnimationData) SetAnimation(state cfg.AnimationState) {
	if a.State == state && a.CurrentAnimation != nil {
		return
	}
	a.State = state
	a.CurrentAnimation = a.Animations[state]
	if a.CurrentAnimation != nil {
		a.CurrentAnimation.Restart()
	}
}

// Frame returns the current frame index of the active strip.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
