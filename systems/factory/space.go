package factory

import (
	"math"

	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space covering the arena.
func CreateSpace(ecs *ecs.ECS, arena cfg.ArenaConfig) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	width := int(math.Ceil(arena.Width))
	height := int(math.Ceil(arena.Height))
	spaceData := resolv.NewSpace(width, height, arena.CellSize, arena.CellSize)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space
}
