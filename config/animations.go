package config

// AnimationDef describes one sprite strip: its frame count, how many ticks
// each frame stays on screen and the unscaled frame size used for the
// fighter's bounding box.
type AnimationDef struct {
	Frames     int
	FrameDelay int // ticks per frame
	Width      float64
	Height     float64
}

// FrameTable maps every animation state of one fighter to its strip.
type FrameTable [AnimationStateCount]AnimationDef

// AnimationConfig holds the per-role frame tables.
type AnimationConfig struct {
	P1 FrameTable
	P2 FrameTable
}

// For returns the frame table of a role.
func (a *AnimationConfig) For(role Role) *FrameTable {
	if role == RoleP2 {
		return &a.P2
	}
	return &a.P1
}

// DefaultAnimations returns the strips of the two stock fighters.
func DefaultAnimations() AnimationConfig {
	return AnimationConfig{
		P1: FrameTable{
			AnimIdleRun:   {Frames: 6, FrameDelay: 8, Width: 42, Height: 38},
			AnimAttacking: {Frames: 5, FrameDelay: 4, Width: 41, Height: 47},
			AnimAirborne:  {Frames: 5, FrameDelay: 6, Width: 51, Height: 47},
		},
		P2: FrameTable{
			AnimIdleRun:   {Frames: 5, FrameDelay: 5, Width: 35, Height: 39},
			AnimAttacking: {Frames: 5, FrameDelay: 4, Width: 41, Height: 47},
			AnimAirborne:  {Frames: 5, FrameDelay: 6, Width: 51, Height: 49},
		},
	}
}
