package systems

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/gamemath"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/yohamta/donburi"
)

// BoundingBoxOf returns the fighter's box for its current animation state,
// anchored at its feet.
func BoundingBoxOf(e *donburi.Entry) gamemath.Rect {
	pos := components.Position.Get(e)
	anim := components.Animation.Get(e)
	return FighterBox(pos.X, pos.Y, anim.State, anim.Table, anim.Scale)
}

// FighterBox is the pure form of BoundingBoxOf.
func FighterBox(x, y float64, state cfg.AnimationState, table *cfg.FrameTable, scale float64) gamemath.Rect {
	def := table[state]
	return gamemath.BoxAt(x, y, def.Width, def.Height, scale)
}

func boxOf(e *donburi.Entry) gamemath.Rect {
	if e.HasComponent(components.Projectile) {
		return ProjectileBox(e)
	}
	return BoundingBoxOf(e)
}

// syncObject moves the entity's resolv object over its box. The object is
// one unit larger on every side so the broadphase is a superset of the
// strict overlap test.
func syncObject(e *donburi.Entry) {
	obj := components.Object.Get(e).Object
	if obj == nil {
		return
	}
	box := boxOf(e).Grow(1)
	obj.X, obj.Y, obj.W, obj.H = box.X, box.Y, box.W, box.H
	obj.Update()
}

// nearby reports whether the collision space places e in a cell shared with
// the target fighter.
func nearby(e, target *donburi.Entry) bool {
	obj := components.Object.Get(e).Object
	if obj == nil || obj.Space == nil {
		return false
	}
	role := components.Fighter.Get(target).Role
	check := obj.Check(0, 0, tags.Role(role))
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tags.ResolvFighter) {
		if oe, ok := o.Data.(*donburi.Entry); ok && oe.Entity() == target.Entity() {
			return true
		}
	}
	return false
}

func destroyObject(w donburi.World, e *donburi.Entry) {
	obj := components.Object.Get(e).Object
	if obj == nil || obj.Space == nil {
		return
	}
	obj.Space.Remove(obj)
}
