package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is the anchor of an entity: bottom center for fighters, center
// for projectiles.
var Position = donburi.NewComponentType[math.Vec2]()

type PhysicsData struct {
	VelocityY float64
	Airborne  bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
