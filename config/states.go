package config

import "github.com/yohamta/donburi/ecs"

// DefaultLayer is the only ECS layer. Entities and the duel renderers all live on it.
const DefaultLayer ecs.LayerID = 0

// Role identifies one of the two fighters.
type Role int

const (
	RoleNone Role = iota // No fighter; used for a drawn match
	RoleP1
	RoleP2
)

func (r Role) String() string {
	switch r {
	case RoleP1:
		return "P1"
	case RoleP2:
		return "P2"
	default:
		return "none"
	}
}

// Opponent returns the other role.
func (r Role) Opponent() Role {
	switch r {
	case RoleP1:
		return RoleP2
	case RoleP2:
		return RoleP1
	default:
		return RoleNone
	}
}

// DefaultFacing points each role toward the arena center.
func (r Role) DefaultFacing() Facing {
	if r == RoleP2 {
		return FacingLeft
	}
	return FacingRight
}

// Facing is a horizontal unit direction.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Sign returns the facing as a float multiplier.
func (f Facing) Sign() float64 {
	if f < 0 {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f < 0 {
		return "left"
	}
	return "right"
}

// AnimationState is the single state a fighter is rendered in.
// Priority: Attacking > Airborne > IdleRun.
type AnimationState int

const (
	AnimIdleRun AnimationState = iota
	AnimAttacking
	AnimAirborne
	AnimationStateCount // Must be last
)

func (s AnimationState) String() string {
	switch s {
	case AnimAttacking:
		return "attacking"
	case AnimAirborne:
		return "airborne"
	default:
		return "idle/run"
	}
}

// MatchState is the match lifecycle.
type MatchState int

const (
	MatchActive MatchState = iota
	MatchOver
)

func (s MatchState) String() string {
	if s == MatchOver {
		return "over"
	}
	return "active"
}
