package scenes

import (
	"sync"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/match"
	"github.com/automoto/doomerang-duel/systems/client"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DuelScene drives a Simulator from the keyboard, one tick per ebiten
// update, and draws its snapshots. Its own ECS world only holds client
// state: input buffers, display settings and the last snapshot.
type DuelScene struct {
	ecs      *ecs.ECS
	sim      *match.Simulator
	bindings cfg.InputConfig
	debug    cfg.DebugConfig
	once     sync.Once
}

func NewDuelScene(sim *match.Simulator, bindings cfg.InputConfig, debug cfg.DebugConfig) *DuelScene {
	return &DuelScene{sim: sim, bindings: bindings, debug: debug}
}

func (ds *DuelScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	for _, in := range client.PollIntents(ds.ecs, &ds.bindings) {
		ds.sim.HandleIntent(in)
	}
	ds.sim.Tick()
	client.SetView(ds.ecs, ds.sim.Snapshot())
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DuelScene) configure() {
	ds.ecs = ecs.NewECS(donburi.NewWorld())

	client.SetRules(ds.ecs, ds.sim.Rules())
	client.SetView(ds.ecs, ds.sim.Snapshot())
	settings := client.GetOrCreateSettings(ds.ecs)
	if ds.debug.ShowHitboxes {
		settings.ShowHitboxes = true
	}

	ds.ecs.AddSystem(func(e *ecs.ECS) { client.UpdateSettings(e, &ds.bindings) })

	ds.ecs.AddRenderer(cfg.DefaultLayer, client.DrawArena)
	ds.ecs.AddRenderer(cfg.DefaultLayer, client.DrawProjectiles)
	ds.ecs.AddRenderer(cfg.DefaultLayer, client.DrawFighters)
	ds.ecs.AddRenderer(cfg.DefaultLayer, client.DrawHitboxes)
	ds.ecs.AddRenderer(cfg.DefaultLayer, client.DrawHealthBars)
	ds.ecs.AddRenderer(cfg.DefaultLayer, client.DrawGameOver)
}
