package client

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/fonts"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHealthBars renders P1's bar top-left and P2's bar top-right.
func DrawHealthBars(e *ecs.ECS, screen *ebiten.Image) {
	snap, ok := viewOf(e)
	if !ok {
		return
	}
	rules := rulesOf(e)
	ui := rules.UI
	face := fonts.HUD.Get()

	for i := range snap.Fighters {
		f := &snap.Fighters[i]
		x := ui.HealthBarMargin
		if f.Role == cfg.RoleP2 {
			x = rules.Arena.Width - ui.HealthBarMargin - ui.HealthBarWidth
		}
		y := ui.HealthBarMargin

		ratio := 0.0
		if f.MaxHealth > 0 {
			ratio = float64(f.Health) / float64(f.MaxHealth)
		}

		vector.FillRect(screen, float32(x), float32(y), float32(ui.HealthBarWidth), float32(ui.HealthBarHeight),
			color.RGBA{40, 40, 40, 255}, false)
		vector.FillRect(screen, float32(x), float32(y), float32(ui.HealthBarWidth*ratio), float32(ui.HealthBarHeight),
			healthColor(ui, ratio), false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(ui.HealthBarWidth), float32(ui.HealthBarHeight),
			2, cfg.White, false)

		label := fmt.Sprintf("%s  %d", f.Role, f.Health)
		text.Draw(screen, label, face, int(x), int(y+ui.HealthBarHeight)+20, cfg.White)
	}

	round := fmt.Sprintf("Round %d", snap.Round)
	w := text.BoundString(face, round).Dx()
	text.Draw(screen, round, face, int(rules.Arena.Width)/2-w/2, int(ui.HealthBarMargin)+18, cfg.White)
}

func healthColor(ui cfg.UIConfig, ratio float64) color.RGBA {
	switch {
	case ratio > 0.5:
		return ui.HealthHighColor
	case ratio > 0.25:
		return ui.HealthMidColor
	default:
		return ui.HealthLowColor
	}
}

// DrawGameOver shows the result banner once the match is over.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	snap, ok := viewOf(e)
	if !ok || snap.State != cfg.MatchOver {
		return
	}
	rules := rulesOf(e)
	width, height := float32(rules.Arena.Width), float32(rules.Arena.Height)

	vector.FillRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)

	title := ResultText(snap)
	titleFace := fonts.Title.Get()
	tw := text.BoundString(titleFace, title).Dx()
	text.Draw(screen, title, titleFace, int(width)/2-tw/2, int(height)/2, cfg.White)

	hint := "Press R to restart"
	hintFace := fonts.HUD.Get()
	hw := text.BoundString(hintFace, hint).Dx()
	text.Draw(screen, hint, hintFace, int(width)/2-hw/2, int(height)/2+40, cfg.White)
}

// ResultText is the banner line for a finished match.
func ResultText(snap *messages.Snapshot) string {
	if snap.Winner == cfg.RoleNone {
		return "DRAW"
	}
	return fmt.Sprintf("%s WINS", snap.Winner)
}
