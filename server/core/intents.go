package core

import (
	"math/rand/v2"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/messages"
)

// RandomIntents emits a reproducible stream of fighter intents. Movement
// latches are held for a while before being released, like a player would.
type RandomIntents struct {
	rng  *rand.Rand
	held [2]messages.IntentKind
	hold [2]int
}

func NewRandomIntents(seed uint64) *RandomIntents {
	r := &RandomIntents{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	r.held = [2]messages.IntentKind{messages.MoveLeftStop, messages.MoveLeftStop}
	return r
}

// Next returns the intents to apply before the next tick.
func (r *RandomIntents) Next() []messages.Intent {
	var out []messages.Intent
	for i, role := range []cfg.Role{cfg.RoleP1, cfg.RoleP2} {
		if r.hold[i] > 0 {
			r.hold[i]--
			if r.hold[i] == 0 {
				out = append(out, messages.Intent{Role: role, Kind: release(r.held[i])})
			}
		} else if r.rng.IntN(8) == 0 {
			kind := messages.MoveLeftStart
			if r.rng.IntN(2) == 0 {
				kind = messages.MoveRightStart
			}
			r.held[i] = kind
			r.hold[i] = 5 + r.rng.IntN(40)
			out = append(out, messages.Intent{Role: role, Kind: kind})
		}

		switch r.rng.IntN(30) {
		case 0:
			out = append(out, messages.Intent{Role: role, Kind: messages.MeleeAttack})
		case 1:
			out = append(out, messages.Intent{Role: role, Kind: messages.RangedJumpAttack})
		}
	}
	return out
}

func release(start messages.IntentKind) messages.IntentKind {
	if start == messages.MoveRightStart {
		return messages.MoveRightStop
	}
	return messages.MoveLeftStop
}
