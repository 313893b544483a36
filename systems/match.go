package systems

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MatchOf returns the match singleton, or nil before one is created.
func MatchOf(w donburi.World) *components.MatchData {
	entry, ok := components.Match.First(w)
	if !ok {
		return nil
	}
	return components.Match.Get(entry)
}

// RulesOf returns the configuration the world was built with.
func RulesOf(w donburi.World) *cfg.Config {
	return &components.Rules.Get(components.Rules.MustFirst(w)).Config
}

// IsMatchOver reports whether the match reached its terminal state.
func IsMatchOver(w donburi.World) bool {
	m := MatchOf(w)
	return m == nil || m.Over()
}

// UpdateMatch runs after both fighters ticked and ends the match once a
// fighter is down. Both down on the same tick is a draw.
func UpdateMatch(e *ecs.ECS) {
	match := MatchOf(e.World)
	if match == nil || match.Over() {
		return
	}

	p1Down := components.Health.Get(match.P1).Current == 0
	p2Down := components.Health.Get(match.P2).Current == 0

	switch {
	case p1Down && p2Down:
		match.Winner = cfg.RoleNone
	case p1Down:
		match.Winner = cfg.RoleP2
	case p2Down:
		match.Winner = cfg.RoleP1
	default:
		return
	}
	match.State = cfg.MatchOver
}
