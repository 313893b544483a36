package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

const (
	MaxTickRate = 1000  // Ticks per second; the step must stay a whole number of nanoseconds
	MaxAirTicks = 10000 // Longest rise of a jump, in ticks
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// Validate reports every precondition the simulator relies on. The returned
// error joins all violations.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, invalid(format, args...))
		}
	}

	a := c.Arena
	check(a.Width > 0 && a.Height > 0, "arena size must be positive, got %vx%v", a.Width, a.Height)
	check(a.Padding >= 0, "arena padding must not be negative, got %v", a.Padding)
	check(a.Width > 2*a.Padding, "arena width %v leaves no room between paddings of %v", a.Width, a.Padding)
	check(a.GroundY > 0 && a.GroundY <= a.Height, "ground %v must lie inside arena height %v", a.GroundY, a.Height)
	check(a.CellSize > 0, "collision cell size must be positive, got %d", a.CellSize)
	for _, role := range []Role{RoleP1, RoleP2} {
		x := c.SpawnX(role)
		check(x >= c.MinX() && x <= c.MaxX(), "%s spawn x %v outside [%v, %v]", role, x, c.MinX(), c.MaxX())
	}

	f := c.Fighter
	check(f.MaxHealth > 0, "fighter max health must be positive, got %d", f.MaxHealth)
	check(f.MoveSpeed >= 0, "fighter move speed must not be negative, got %v", f.MoveSpeed)
	check(f.JumpSpeed > 0, "fighter jump speed must be positive, got %v", f.JumpSpeed)
	check(f.Gravity > 0, "fighter gravity must be positive, got %v", f.Gravity)
	if f.Gravity > 0 && f.JumpSpeed > 0 {
		check(f.JumpSpeed/f.Gravity <= MaxAirTicks,
			"jump would rise for %v ticks, more than %d", math.Ceil(f.JumpSpeed/f.Gravity), MaxAirTicks)
	}
	check(f.Scale > 0, "fighter scale must be positive, got %v", f.Scale)

	cb := c.Combat
	check(cb.MeleeDamage >= 0, "melee damage must not be negative, got %d", cb.MeleeDamage)
	check(cb.RangedDamage >= 0, "ranged damage must not be negative, got %d", cb.RangedDamage)
	check(cb.MeleeKnockback >= 0, "melee knockback must not be negative, got %v", cb.MeleeKnockback)
	check(cb.RangedKnockback >= 0, "ranged knockback must not be negative, got %v", cb.RangedKnockback)
	check(cb.AttackTicks > 0, "attack window must be positive, got %d", cb.AttackTicks)
	check(cb.HitFlashTicks >= 0, "hit flash must not be negative, got %d", cb.HitFlashTicks)
	check(cb.GraceTicks >= 0, "grace window must not be negative, got %d", cb.GraceTicks)

	p := c.Projectile
	check(p.Speed > 0, "projectile speed must be positive, got %v", p.Speed)
	check(p.Width > 0 && p.Height > 0, "projectile size must be positive, got %vx%v", p.Width, p.Height)

	check(c.Loop.TickRate > 0 && c.Loop.TickRate <= MaxTickRate,
		"tick rate must be in [1, %d], got %d", MaxTickRate, c.Loop.TickRate)
	check(c.Loop.MaxCatchUpTicks > 0, "max catch-up ticks must be positive, got %d", c.Loop.MaxCatchUpTicks)

	tallest := 0.0
	for _, role := range []Role{RoleP1, RoleP2} {
		table := c.Animation.For(role)
		for state := AnimationState(0); state < AnimationStateCount; state++ {
			def := table[state]
			check(def.Frames > 0 && def.FrameDelay > 0,
				"%s %s animation needs positive frames and delay, got %d/%d", role, state, def.Frames, def.FrameDelay)
			check(def.Width > 0 && def.Height > 0,
				"%s %s animation needs a positive size, got %vx%v", role, state, def.Width, def.Height)
			tallest = max(tallest, def.Height)
		}
	}

	if len(errs) == 0 {
		apex := c.GroundY() - c.JumpHeight() - tallest*f.Scale
		check(apex >= 0, "jump apex leaves the arena by %v units", -apex)
	}

	return errors.Join(errs...)
}

// GroundY is a shorthand for Arena.GroundY.
func (c *Config) GroundY() float64 { return c.Arena.GroundY }

// JumpHeight returns how far above the ground a jump peaks, integrating the
// same per-tick steps the simulation uses. The rise is cut off after
// MaxAirTicks steps.
func (c *Config) JumpHeight() float64 {
	if c.Fighter.Gravity <= 0 {
		return 0
	}
	v, y, peak := -c.Fighter.JumpSpeed, 0.0, 0.0
	for i := 0; v < 0 && i < MaxAirTicks; i++ {
		v += c.Fighter.Gravity
		y += v
		peak = min(peak, y)
	}
	return -peak
}
