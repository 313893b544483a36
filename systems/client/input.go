package client

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var roles = [2]cfg.Role{cfg.RoleP1, cfg.RoleP2}

// PollIntents polls the keyboard and returns the intents of this frame.
// Fighter actions come from press/release edges; Restart from a fresh press.
func PollIntents(e *ecs.ECS, bindings *cfg.InputConfig) []messages.Intent {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [2][cfg.ActionCount]bool{}

	var intents []messages.Intent
	for i, role := range roles {
		for actionID, binding := range bindings.For(role) {
			if anyPressed(binding.Keys) {
				input.Current[i][actionID] = true
			}
		}
		intents = append(intents, messages.ActionIntents(role, input.Previous[i], input.Current[i])...)
	}

	if anyJustPressed(bindings.Restart) {
		intents = append(intents, messages.Intent{Role: cfg.RoleNone, Kind: messages.Restart})
	}
	return intents
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(components.Input.MustFirst(e.World))
}
