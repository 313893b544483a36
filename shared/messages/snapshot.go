package messages

import (
	"github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/gamemath"
)

// FighterSnapshot is the read-only view of one fighter.
type FighterSnapshot struct {
	Role      config.Role
	X, Y      float64
	Facing    config.Facing
	Animation config.AnimationState
	Frame     int

	Flashing       bool
	FlashIntensity float64 // 1 right after a hit, eases to 0

	Health    int
	MaxHealth int

	Airborne  bool
	Attacking bool

	Box gamemath.Rect
}

// ProjectileSnapshot is the read-only view of one active projectile.
type ProjectileSnapshot struct {
	X, Y      float64
	Direction config.Facing
	Role      config.Role
	Box       gamemath.Rect
}

// Snapshot is everything a renderer needs for one frame. Slices are owned
// by the snapshot.
type Snapshot struct {
	MatchID string
	Round   int
	Tick    uint64

	State  config.MatchState
	Winner config.Role

	Fighters    [2]FighterSnapshot // P1, P2
	Projectiles []ProjectileSnapshot
	Events      []CombatEvent // Events of the last tick
}

// Fighter returns the snapshot of a role.
func (s *Snapshot) Fighter(role config.Role) *FighterSnapshot {
	if role == config.RoleP2 {
		return &s.Fighters[1]
	}
	return &s.Fighters[0]
}
