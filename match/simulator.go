// Package match runs one duel: two fighters, their projectiles and the
// fixed-timestep loop that advances them.
package match

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Simulator owns the ECS world of the current round. It is not safe for
// concurrent use; one driver calls Tick or Advance and HandleIntent.
type Simulator struct {
	rules cfg.Config
	ecs   *ecs.ECS

	step        time.Duration
	accumulator time.Duration
	round       int
}

// NewSimulator validates rules and starts the first round.
func NewSimulator(rules cfg.Config) (*Simulator, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("new simulator: %w", err)
	}
	s := &Simulator{
		rules: rules,
		step:  time.Second / time.Duration(rules.Loop.TickRate),
	}
	s.Reset()
	return s, nil
}

// Reset discards both fighters and every projectile and starts a new round
// from the spawn points. It is valid from any state.
func (s *Simulator) Reset() {
	s.round++
	s.accumulator = 0

	s.ecs = ecs.NewECS(donburi.NewWorld())
	s.ecs.AddSystem(systems.UpdateFighters)
	s.ecs.AddSystem(systems.UpdateMatch)

	id := uuid.NewString()
	factory.CreateMatch(s.ecs, s.rules, id, s.round)
	log.Printf("[match %s] round %d started", id, s.round)
}

// Tick advances the match by one logical step. It does nothing once the
// match is over.
func (s *Simulator) Tick() {
	match := s.match()
	if match.Over() {
		return
	}
	s.ecs.Update()
	if match.Over() {
		log.Printf("[match %s] over after %d ticks, winner %s", match.ID, match.Tick, match.Winner)
	}
}

// Advance accumulates real elapsed time and runs one Tick per logical step.
// At most Loop.MaxCatchUpTicks run per call; whole steps beyond that are
// dropped, and so is everything accumulated once the match is over. It
// returns the number of ticks run.
func (s *Simulator) Advance(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	s.accumulator += elapsed

	ticks := 0
	for s.accumulator >= s.step && ticks < s.rules.Loop.MaxCatchUpTicks {
		if s.Over() {
			s.accumulator = 0
			break
		}
		s.Tick()
		s.accumulator -= s.step
		ticks++
	}
	if s.accumulator >= s.step {
		s.accumulator %= s.step
	}
	return ticks
}

// HandleIntent routes one input event. Everything but Restart is ignored
// while the match is over.
func (s *Simulator) HandleIntent(in messages.Intent) {
	if in.Kind == messages.Restart {
		s.Reset()
		return
	}
	if s.Over() {
		return
	}
	e := s.match().FighterOf(in.Role)
	if e == nil {
		return
	}

	w := s.ecs.World
	switch in.Kind {
	case messages.MoveLeftStart:
		systems.SetMoveIntent(w, e, cfg.FacingLeft, true)
	case messages.MoveLeftStop:
		systems.SetMoveIntent(w, e, cfg.FacingLeft, false)
	case messages.MoveRightStart:
		systems.SetMoveIntent(w, e, cfg.FacingRight, true)
	case messages.MoveRightStop:
		systems.SetMoveIntent(w, e, cfg.FacingRight, false)
	case messages.MeleeAttack:
		systems.TriggerMeleeAttack(s.ecs, e)
	case messages.RangedJumpAttack:
		systems.TriggerJump(w, e)
	}
}

// Snapshot returns a read-only copy of the renderable state.
func (s *Simulator) Snapshot() messages.Snapshot {
	return systems.BuildSnapshot(s.ecs.World)
}

// Fighter returns the current view of one fighter.
func (s *Simulator) Fighter(role cfg.Role) messages.FighterSnapshot {
	snap := s.Snapshot()
	return *snap.Fighter(role)
}

func (s *Simulator) Over() bool          { return s.match().Over() }
func (s *Simulator) Winner() cfg.Role    { return s.match().Winner }
func (s *Simulator) MatchID() string     { return s.match().ID }
func (s *Simulator) Round() int          { return s.round }
func (s *Simulator) Ticks() uint64       { return s.match().Tick }
func (s *Simulator) Rules() cfg.Config   { return s.rules }
func (s *Simulator) Step() time.Duration { return s.step }

func (s *Simulator) match() *components.MatchData {
	return systems.MatchOf(s.ecs.World)
}
