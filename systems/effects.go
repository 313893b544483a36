package systems

import (
	"github.com/automoto/doomerang-duel/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// startFlash restarts the hit flash. Intensity eases from 1 to 0 over ticks.
func startFlash(e *donburi.Entry, ticks int) {
	flash := components.Flash.Get(e)
	flash.Ticks = ticks
	if ticks <= 0 {
		flash.Intensity = 0
		flash.Tween = nil
		return
	}
	flash.Intensity = 1
	flash.Tween = gween.New(1, 0, float32(ticks), ease.OutQuad)
}

// updateFlash decrements the flash timer and clears it when expired
func updateFlash(e *donburi.Entry) {
	flash := components.Flash.Get(e)
	if flash.Ticks <= 0 {
		return
	}
	flash.Ticks--
	if flash.Tween != nil {
		v, _ := flash.Tween.Update(1)
		flash.Intensity = float64(v)
	}
	if flash.Ticks == 0 {
		flash.Intensity = 0
		flash.Tween = nil
	}
}
