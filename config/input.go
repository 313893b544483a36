package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical fighter action bound to a key.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds the key bindings of both fighters and the global keys.
type InputConfig struct {
	P1 map[ActionID]InputBinding
	P2 map[ActionID]InputBinding

	Restart       []ebiten.Key
	ToggleHitbox  []ebiten.Key
	ToggleFullscr []ebiten.Key
}

// For returns the bindings of a role.
func (in *InputConfig) For(role Role) map[ActionID]InputBinding {
	if role == RoleP2 {
		return in.P2
	}
	return in.P1
}

// DefaultInput returns the split keyboard layout: P1 on the left hand, P2
// on the arrows.
func DefaultInput() InputConfig {
	return InputConfig{
		P1: map[ActionID]InputBinding{
			ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionJump:      {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionAttack:    {Keys: []ebiten.Key{ebiten.KeyF}},
		},
		P2: map[ActionID]InputBinding{
			ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
			ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
			ActionJump:      {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
			ActionAttack:    {Keys: []ebiten.Key{ebiten.KeySlash}},
		},
		Restart:       []ebiten.Key{ebiten.KeyR},
		ToggleHitbox:  []ebiten.Key{ebiten.KeyF1},
		ToggleFullscr: []ebiten.Key{ebiten.KeyF11},
	}
}
