package factory

import (
	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/gamemath"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateFighter spawns a fresh fighter for role at its spawn point with
// full health and every flag cleared.
func CreateFighter(ecs *ecs.ECS, rules *cfg.Config, role cfg.Role) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(ecs)

	x, y := rules.SpawnX(role), rules.GroundY()
	components.Position.SetValue(fighter, math.Vec2{X: x, Y: y})

	components.Fighter.SetValue(fighter, components.FighterData{
		Role:   role,
		Facing: role.DefaultFacing(),
	})
	components.Physics.SetValue(fighter, components.PhysicsData{})
	components.Health.SetValue(fighter, components.HealthData{
		Current: rules.Fighter.MaxHealth,
		Max:     rules.Fighter.MaxHealth,
	})

	table := rules.Animation.For(role)
	components.Animation.Set(fighter, GenerateAnimations(table, rules.Fighter.Scale))

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(fighter, components.FlashData{})

	// The resolv object is one unit larger than the box on every side so the
	// cell broadphase never misses a strict overlap.
	def := table[cfg.AnimIdleRun]
	box := gamemath.BoxAt(x, y, def.Width, def.Height, rules.Fighter.Scale).Grow(1)
	obj := resolv.NewObject(box.X, box.Y, box.W, box.H, tags.ResolvFighter, tags.Role(role))
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return fighter
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if entry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(entry).Add(obj)
	}
}
