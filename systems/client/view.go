package client

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/yohamta/donburi/ecs"
)

// SetView stores the snapshot the renderers draw next.
func SetView(e *ecs.ECS, snap messages.Snapshot) {
	if _, ok := components.View.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.View))
	}
	components.View.Get(components.View.MustFirst(e.World)).Snapshot = snap
}

func viewOf(e *ecs.ECS) (*messages.Snapshot, bool) {
	entry, ok := components.View.First(e.World)
	if !ok {
		return nil, false
	}
	return &components.View.Get(entry).Snapshot, true
}

// SetRules stores the configuration the renderers size and color against.
func SetRules(e *ecs.ECS, rules cfg.Config) {
	if _, ok := components.Rules.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Rules))
	}
	components.Rules.Get(components.Rules.MustFirst(e.World)).Config = rules
}

func rulesOf(e *ecs.ECS) *cfg.Config {
	return &components.Rules.Get(components.Rules.MustFirst(e.World)).Config
}
