package factory

import (
	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match singleton holding the rules and both
// fighters. The space must exist before the fighters are created.
func CreateMatch(ecs *ecs.ECS, rules cfg.Config, id string, round int) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Rules.SetValue(match, components.RulesData{Config: rules})

	r := &rules
	CreateSpace(ecs, r.Arena)

	components.Match.SetValue(match, components.MatchData{
		ID:     id,
		Round:  round,
		State:  cfg.MatchActive,
		Winner: cfg.RoleNone,
		P1:     CreateFighter(ecs, r, cfg.RoleP1),
		P2:     CreateFighter(ecs, r, cfg.RoleP2),
	})

	return match
}
