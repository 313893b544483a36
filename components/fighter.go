package components

import (
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
)

// FighterData holds the combat state of one fighter. Timed transitions are
// countdowns in ticks, decremented by the fighter's own update.
type FighterData struct {
	Role   cfg.Role
	Facing cfg.Facing

	// Movement latches set by intents
	MoveLeft  bool
	MoveRight bool

	Attacking   bool
	AttackTicks int  // Remaining ticks of the attack window
	Swing       int  // Activation counter, stamped on the projectiles it fires
	SwingLanded bool // The current swing already damaged the opponent

	GraceTicks int // Melee cannot land on this fighter while > 0
	Defeated   bool

	Projectiles []*donburi.Entry // Fired order
}

var Fighter = donburi.NewComponentType[FighterData]()
