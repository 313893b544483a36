package core

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/messages"
)

var ErrInvariant = errors.New("invariant violated")

// CheckSnapshot compares two consecutive snapshots of the same round.
func CheckSnapshot(rules *cfg.Config, prev, cur *messages.Snapshot) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: tick %d: "+format, append([]any{ErrInvariant, cur.Tick}, args...)...))
	}

	for i, f := range cur.Fighters {
		if f.Health < 0 || f.Health > rules.Fighter.MaxHealth {
			fail("%s health %d out of range", f.Role, f.Health)
		}
		if f.Health > prev.Fighters[i].Health {
			fail("%s healed from %d to %d", f.Role, prev.Fighters[i].Health, f.Health)
		}
		if f.X < rules.MinX() || f.X > rules.MaxX() {
			fail("%s x %v outside padding", f.Role, f.X)
		}
		if f.Y > rules.GroundY() {
			fail("%s below ground at %v", f.Role, f.Y)
		}
	}

	down := cur.Fighters[0].Health == 0 || cur.Fighters[1].Health == 0
	if down != (cur.State == cfg.MatchOver) {
		fail("state %s with health %d/%d", cur.State, cur.Fighters[0].Health, cur.Fighters[1].Health)
	}
	if prev.State == cfg.MatchOver && (cur.Tick != prev.Tick || cur.Fighters != prev.Fighters) {
		fail("world changed after the match ended")
	}
	for _, p := range cur.Projectiles {
		if p.X < 0 || p.X > rules.Arena.Width {
			fail("%s projectile active at x %v", p.Role, p.X)
		}
	}

	return errors.Join(errs...)
}
