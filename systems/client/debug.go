package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitboxes outlines every collision box when the overlay is on.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.ShowHitboxes {
		return
	}
	snap, ok := viewOf(e)
	if !ok {
		return
	}
	c := rulesOf(e).UI.HitboxColor

	for _, f := range snap.Fighters {
		b := f.Box
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, c, false)
	}
	for _, p := range snap.Projectiles {
		b := p.Box
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, c, false)
	}
}
