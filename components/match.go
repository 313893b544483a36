package components

import (
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state.
// This is a singleton component - only one match exists per world.
type MatchData struct {
	ID     string
	Round  int
	State  cfg.MatchState
	Winner cfg.Role
	Tick   uint64

	P1 *donburi.Entry
	P2 *donburi.Entry

	Events []messages.CombatEvent // Cleared at the start of every tick
}

var Match = donburi.NewComponentType[MatchData]()

// FighterOf returns the fighter entry of a role.
func (m *MatchData) FighterOf(role cfg.Role) *donburi.Entry {
	switch role {
	case cfg.RoleP1:
		return m.P1
	case cfg.RoleP2:
		return m.P2
	default:
		return nil
	}
}

// Over reports whether the match reached its terminal state.
func (m *MatchData) Over() bool {
	return m.State == cfg.MatchOver
}

// RulesData is the immutable configuration of the world it lives in.
type RulesData struct {
	cfg.Config
}

var Rules = donburi.NewComponentType[RulesData]()
