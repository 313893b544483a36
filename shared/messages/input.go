package messages

import "github.com/automoto/doomerang-duel/config"

// IntentKind is a discrete input event decoupled from physical keys.
type IntentKind int

const (
	MoveLeftStart IntentKind = iota
	MoveLeftStop
	MoveRightStart
	MoveRightStop
	MeleeAttack
	RangedJumpAttack
	Restart
	IntentKindCount // Must be last
)

func (k IntentKind) String() string {
	switch k {
	case MoveLeftStart:
		return "move-left-start"
	case MoveLeftStop:
		return "move-left-stop"
	case MoveRightStart:
		return "move-right-start"
	case MoveRightStop:
		return "move-right-stop"
	case MeleeAttack:
		return "melee"
	case RangedJumpAttack:
		return "jump"
	case Restart:
		return "restart"
	default:
		return "unknown"
	}
}

// Intent is sent from an input source to the simulator.
type Intent struct {
	Role config.Role
	Kind IntentKind
}

// ActionIntents turns one fighter's pressed-action edges into intents.
// Movement emits start/stop on press/release, attacks fire on press only.
func ActionIntents(role config.Role, prev, cur [config.ActionCount]bool) []Intent {
	var out []Intent
	edge := func(action config.ActionID, start, stop IntentKind) {
		switch {
		case cur[action] && !prev[action]:
			out = append(out, Intent{Role: role, Kind: start})
		case !cur[action] && prev[action] && stop != start:
			out = append(out, Intent{Role: role, Kind: stop})
		}
	}
	edge(config.ActionMoveLeft, MoveLeftStart, MoveLeftStop)
	edge(config.ActionMoveRight, MoveRightStart, MoveRightStop)
	edge(config.ActionJump, RangedJumpAttack, RangedJumpAttack)
	edge(config.ActionAttack, MeleeAttack, MeleeAttack)
	return out
}
