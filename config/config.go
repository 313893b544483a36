package config

import "image/color"

// ArenaConfig describes the flat fighting stage.
type ArenaConfig struct {
	Width   float64
	Height  float64
	GroundY float64 // Feet line; fighters rest at y == GroundY
	Padding float64 // Horizontal keep-out at both arena edges

	// Spawn points as a fraction of Width
	SpawnP1 float64
	SpawnP2 float64

	// Collision broadphase grid
	CellSize int
}

// FighterConfig contains movement and vitality values shared by both roles.
type FighterConfig struct {
	MaxHealth int

	// Movement
	MoveSpeed float64 // Units per tick while a movement latch is held
	JumpSpeed float64 // Upward launch speed, applied as -JumpSpeed
	Gravity   float64 // Added to velocityY every airborne tick

	// Sprite scale applied to the animation size tables
	Scale float64
}

// CombatConfig contains damage, knockback and timing values.
type CombatConfig struct {
	MeleeDamage     int
	RangedDamage    int
	MeleeKnockback  float64
	RangedKnockback float64

	// Timing (ticks)
	AttackTicks   int // Length of the attack window
	HitFlashTicks int // Cosmetic hit flash
	GraceTicks    int // Post-hit window in which melee cannot land again

	// Allow starting a melee attack while airborne
	AllowAirborneMelee bool
}

// ProjectileConfig contains ranged attack values.
type ProjectileConfig struct {
	Speed  float64
	Width  float64
	Height float64

	// Spawn point relative to the fighter's feet, X along facing
	SpawnOffsetX float64
	SpawnOffsetY float64
}

// LoopConfig contains fixed timestep settings.
type LoopConfig struct {
	TickRate        int // Logical ticks per second
	MaxCatchUpTicks int // Upper bound of ticks run by one Advance call
}

// UIConfig contains colors and sizes used by the ebiten front-end.
type UIConfig struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	P1Color         color.RGBA
	P2Color         color.RGBA
	FlashColor      color.RGBA
	HitboxColor     color.RGBA

	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64

	HealthHighColor color.RGBA
	HealthMidColor  color.RGBA
	HealthLowColor  color.RGBA
}

// Config aggregates everything a match needs. A Config is copied into the
// simulator at construction and never changes afterwards.
type Config struct {
	Arena      ArenaConfig
	Fighter    FighterConfig
	Combat     CombatConfig
	Projectile ProjectileConfig
	Animation  AnimationConfig
	Loop       LoopConfig
	UI         UIConfig
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 100, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 50, G: 255, B: 50, A: 255}
	DarkRed      = color.RGBA{R: 139, G: 0, B: 0, A: 200}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Default returns the stock duel tuning. Every call returns a
// fresh value so callers may adjust it before building a simulator.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:    1280,
			Height:   720,
			GroundY:  576, // Height / 1.25
			Padding:  50,
			SpawnP1:  0.3,
			SpawnP2:  0.7,
			CellSize: 32,
		},
		Fighter: FighterConfig{
			MaxHealth: 100,
			MoveSpeed: 8,
			JumpSpeed: 20,
			Gravity:   0.8,
			Scale:     2.5,
		},
		Combat: CombatConfig{
			MeleeDamage:     10,
			RangedDamage:    10,
			MeleeKnockback:  20,
			RangedKnockback: 10,

			AttackTicks:   30, // 500ms at 60 ticks/s
			HitFlashTicks: 12, // 200ms
			GraceTicks:    12,

			AllowAirborneMelee: true,
		},
		Projectile: ProjectileConfig{
			Speed:        15,
			Width:        30,
			Height:       20,
			SpawnOffsetX: 50,
			SpawnOffsetY: 50,
		},
		Animation: DefaultAnimations(),
		Loop: LoopConfig{
			TickRate:        60,
			MaxCatchUpTicks: 5,
		},
		UI: UIConfig{
			BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
			GroundColor:     color.RGBA{R: 60, G: 60, B: 70, A: 255},
			P1Color:         LightRed,
			P2Color:         LightBlue,
			FlashColor:      DarkRed,
			HitboxColor:     color.RGBA{R: 0, G: 255, B: 255, A: 255},

			HealthBarWidth:  200,
			HealthBarHeight: 25,
			HealthBarMargin: 50,

			HealthHighColor: BrightGreen,
			HealthMidColor:  Orange,
			HealthLowColor:  color.RGBA{R: 255, G: 50, B: 50, A: 255},
		},
	}
}

// SpawnX returns the spawn X coordinate for a role.
func (c *Config) SpawnX(role Role) float64 {
	if role == RoleP2 {
		return c.Arena.Width * c.Arena.SpawnP2
	}
	return c.Arena.Width * c.Arena.SpawnP1
}

// MinX and MaxX bound every fighter's X.
func (c *Config) MinX() float64 { return c.Arena.Padding }
func (c *Config) MaxX() float64 { return c.Arena.Width - c.Arena.Padding }
