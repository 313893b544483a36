package client

import (
	"image/color"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena clears the screen and draws the ground line.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	rules := rulesOf(e)
	screen.Fill(rules.UI.BackgroundColor)

	ground := float32(rules.GroundY())
	vector.FillRect(screen, 0, ground, float32(rules.Arena.Width), float32(rules.Arena.Height)-ground,
		rules.UI.GroundColor, false)
}

// DrawFighters draws each fighter as its bounding box, tinted toward the
// flash color while hit.
func DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	snap, ok := viewOf(e)
	if !ok {
		return
	}
	ui := rulesOf(e).UI

	for i := range snap.Fighters {
		f := &snap.Fighters[i]
		base := ui.P1Color
		if f.Role == cfg.RoleP2 {
			base = ui.P2Color
		}
		clr := lerpColor(base, ui.FlashColor, f.FlashIntensity)

		box := f.Box
		vector.FillRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), clr, false)
		drawFacing(screen, f)
		if f.Attacking {
			drawSwing(screen, f, clr)
		}
	}
}

// drawFacing marks the leading edge of the fighter, stepping through the
// animation frames so the strip index is visible without sprites.
func drawFacing(screen *ebiten.Image, f *messages.FighterSnapshot) {
	const marker = 6
	box := f.Box
	x := box.X
	if f.Facing == cfg.FacingRight {
		x = box.Right() - marker
	}
	y := box.Y + float64(f.Frame%4)*marker
	vector.FillRect(screen, float32(x), float32(y), marker, marker, cfg.White, false)
}

func drawSwing(screen *ebiten.Image, f *messages.FighterSnapshot, clr color.RGBA) {
	const reach = 18
	box := f.Box
	x := box.Right()
	if f.Facing == cfg.FacingLeft {
		x = box.X - reach
	}
	vector.FillRect(screen, float32(x), float32(box.Y+box.H/3), reach, 4, clr, false)
}

// DrawProjectiles draws every active projectile.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	snap, ok := viewOf(e)
	if !ok {
		return
	}
	ui := rulesOf(e).UI

	for _, p := range snap.Projectiles {
		clr := ui.P1Color
		if p.Role == cfg.RoleP2 {
			clr = ui.P2Color
		}
		vector.FillRect(screen, float32(p.Box.X), float32(p.Box.Y), float32(p.Box.W), float32(p.Box.H), clr, false)
		vector.StrokeRect(screen, float32(p.Box.X), float32(p.Box.Y), float32(p.Box.W), float32(p.Box.H), 1, cfg.White, false)
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
