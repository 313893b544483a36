package main

import (
	"flag"
	"log"

	"github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/fonts"
	"github.com/automoto/doomerang-duel/match"
	"github.com/automoto/doomerang-duel/scenes"
	"github.com/automoto/doomerang-duel/systems/client"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene  Scene
	width  int
	height int
}

func NewGame(sim *match.Simulator, debug config.DebugConfig) *Game {
	rules := sim.Rules()
	return &Game{
		scene:  scenes.NewDuelScene(sim, config.DefaultInput(), debug),
		width:  int(rules.Arena.Width),
		height: int(rules.Arena.Height),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.width, g.height
}

func main() {
	var debug config.DebugConfig
	flag.BoolVar(&debug.ShowHitboxes, "hitboxes", false, "start with the hitbox overlay on")
	flag.Parse()

	rules := config.Default()
	sim, err := match.NewSimulator(rules)
	if err != nil {
		log.Fatalf("Failed to create match: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := client.InitPersistence("doomerang-duel"); err != nil {
		log.Printf("[settings] persistence unavailable: %v", err)
	}

	window := config.DefaultWindow()
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(rules.Loop.TickRate)

	if err := ebiten.RunGame(NewGame(sim, debug)); err != nil {
		log.Fatal(err)
	}
}
