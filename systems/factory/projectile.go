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

// CreateProjectile spawns an active projectile centered on (x, y) and
// traveling along direction.
func CreateProjectile(ecs *ecs.ECS, rules *cfg.Config, owner cfg.Role, x, y float64, direction cfg.Facing) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	pc := rules.Projectile
	components.Position.SetValue(p, math.Vec2{X: x, Y: y})
	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:     owner,
		Direction: direction,
		Speed:     pc.Speed,
		Width:     pc.Width,
		Height:    pc.Height,
		Active:    true,
	})

	box := gamemath.CenteredBox(x, y, pc.Width, pc.Height).Grow(1)
	obj := resolv.NewObject(box.X, box.Y, box.W, box.H, tags.ResolvProjectile, tags.Role(owner))
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return p
}
