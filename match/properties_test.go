package match

import (
	"testing"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/messages"
	"pgregory.net/rapid"
)

// Random intent streams must keep every fighter inside its bounds, never
// heal anyone mid-round and freeze the world once the match is over.
func TestDuelInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rules := cfg.Default()
		rules.Combat.MeleeDamage = rapid.IntRange(0, 60).Draw(t, "melee")
		rules.Combat.RangedDamage = rapid.IntRange(0, 60).Draw(t, "ranged")
		rules.Combat.MeleeKnockback = float64(rapid.IntRange(0, 400).Draw(t, "meleeKnockback"))
		rules.Combat.AllowAirborneMelee = rapid.Bool().Draw(t, "airborneMelee")

		s, err := NewSimulator(rules)
		if err != nil {
			t.Fatalf("new simulator: %v", err)
		}

		prev := s.Snapshot()
		steps := rapid.IntRange(1, 400).Draw(t, "steps")
		for i := range steps {
			if rapid.IntRange(0, 3).Draw(t, "send") == 0 {
				s.HandleIntent(messages.Intent{
					Role: cfg.Role(rapid.IntRange(1, 2).Draw(t, "role")),
					Kind: messages.IntentKind(rapid.IntRange(0, int(messages.Restart)-1).Draw(t, "kind")),
				})
			}
			s.Tick()
			snap := s.Snapshot()

			for j, f := range snap.Fighters {
				if f.Health < 0 || f.Health > rules.Fighter.MaxHealth {
					t.Fatalf("step %d: %s health %d out of range", i, f.Role, f.Health)
				}
				if f.Health > prev.Fighters[j].Health {
					t.Fatalf("step %d: %s healed from %d to %d", i, f.Role, prev.Fighters[j].Health, f.Health)
				}
				if f.X < rules.MinX() || f.X > rules.MaxX() {
					t.Fatalf("step %d: %s x %v outside padding", i, f.Role, f.X)
				}
				if f.Y > rules.GroundY() {
					t.Fatalf("step %d: %s below ground at %v", i, f.Role, f.Y)
				}
				if f.Box.Y < 0 {
					t.Fatalf("step %d: %s box leaves the arena top", i, f.Role)
				}
			}

			down := snap.Fighters[0].Health == 0 || snap.Fighters[1].Health == 0
			if down != (snap.State == cfg.MatchOver) {
				t.Fatalf("step %d: state %s with healths %d/%d", i, snap.State, snap.Fighters[0].Health, snap.Fighters[1].Health)
			}
			if prev.State == cfg.MatchOver {
				if snap.Tick != prev.Tick || snap.Fighters != prev.Fighters || snap.Winner != prev.Winner {
					t.Fatalf("step %d: world changed after the match ended", i)
				}
			}
			prev = snap
		}
	})
}
