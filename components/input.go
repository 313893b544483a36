package components

import (
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state of every
// fighter action, indexed by role (P1 first).
type InputData struct {
	Current  [2][cfg.ActionCount]bool
	Previous [2][cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
