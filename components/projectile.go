package components

import (
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner     cfg.Role
	Direction cfg.Facing
	Speed     float64
	Width     float64
	Height    float64
	Active    bool
	Swing     int // Owner's activation that fired it, 0 outside a swing
}

var Projectile = donburi.NewComponentType[ProjectileData]()
