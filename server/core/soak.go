// Package core runs headless matches from a seeded intent stream and checks
// the simulation invariants on every tick.
package core

import (
	"log"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/match"
	"github.com/automoto/doomerang-duel/shared/messages"
)

// Report summarizes a soak run.
type Report struct {
	Rounds     int
	Ticks      uint64
	Wins       map[string]int // by role name, "none" for draws, "timeout" for cut rounds
	Violations []error
}

// Soak plays Rounds matches on one simulator.
type Soak struct {
	sim     *match.Simulator
	rules   cfg.Config
	intents *RandomIntents
	rounds  int
	maxTick uint64

	prev   messages.Snapshot
	report Report
}

// NewSoak plays rounds matches. A round still running after maxTicks is
// restarted and counted without a winner.
func NewSoak(sim *match.Simulator, intents *RandomIntents, rounds int, maxTicks uint64) *Soak {
	return &Soak{
		sim:     sim,
		rules:   sim.Rules(),
		intents: intents,
		rounds:  rounds,
		maxTick: maxTicks,
		prev:    sim.Snapshot(),
		report:  Report{Wins: map[string]int{}},
	}
}

// Step runs one tick and reports whether the soak is finished.
func (s *Soak) Step() bool {
	if s.report.Rounds >= s.rounds {
		return true
	}

	for _, in := range s.intents.Next() {
		s.sim.HandleIntent(in)
	}
	s.sim.Tick()
	s.report.Ticks++

	cur := s.sim.Snapshot()
	if err := CheckSnapshot(&s.rules, &s.prev, &cur); err != nil {
		log.Printf("[soak] match %s: %v", cur.MatchID, err)
		s.report.Violations = append(s.report.Violations, err)
	}
	s.prev = cur

	if !s.sim.Over() && cur.Tick < s.maxTick {
		return false
	}

	winner := s.sim.Winner().String()
	if !s.sim.Over() {
		winner = "timeout"
	}
	s.report.Wins[winner]++
	s.report.Rounds++
	log.Printf("[soak] round %d of %d: %s after %d ticks", s.report.Rounds, s.rounds, winner, cur.Tick)

	if s.report.Rounds >= s.rounds {
		return true
	}
	s.sim.HandleIntent(messages.Intent{Kind: messages.Restart})
	s.prev = s.sim.Snapshot()
	return false
}

func (s *Soak) Report() Report {
	return s.report
}
