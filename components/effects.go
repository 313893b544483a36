package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks the hit flash. Ticks is authoritative; the tween only
// shapes Intensity for display.
type FlashData struct {
	Ticks     int // frames remaining
	Intensity float64
	Tween     *gween.Tween
}

var Flash = donburi.NewComponentType[FlashData]()
