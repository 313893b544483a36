package messages

import "github.com/automoto/doomerang-duel/config"

// CombatEventKind distinguishes hits from the final blow.
type CombatEventKind int

const (
	EventHit CombatEventKind = iota
	EventDefeat
)

func (k CombatEventKind) String() string {
	if k == EventDefeat {
		return "defeat"
	}
	return "hit"
}

// CombatEvent is recorded when an attack connects. A defeat event follows
// the hit that brought the target to zero health.
type CombatEvent struct {
	Kind     CombatEventKind
	Tick     uint64
	Attacker config.Role
	Target   config.Role
	Damage   int
	Ranged   bool
	Health   int // Target health after the hit
}
