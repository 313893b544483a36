package animations

// Animation steps through a strip of Frames frames, holding each one for
// Delay ticks.
type Animation struct {
	Frames           int
	Delay            int // how many ticks before next frame
	counter          int
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update() {
	if a.Frames <= 0 {
		return
	}
	a.counter++
	if a.counter < a.Delay {
		return
	}
	a.counter = 0
	a.frame++
	if a.frame >= a.Frames {
		a.Looped = true
		if a.FreezeOnComplete {
			// Stay on last frame
			a.frame = a.Frames - 1
		} else {
			// loop back to the beginning
			a.frame = 0
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.counter = 0
	a.Looped = false
}

func NewAnimation(frames, delay int) *Animation {
	return &Animation{
		Frames: frames,
		Delay:  max(delay, 1),
	}
}
