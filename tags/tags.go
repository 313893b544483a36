package tags

import (
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
)

var (
	Fighter    = donburi.NewTag().SetName("Fighter")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for physics collision
const (
	ResolvFighter    = "Fighter"
	ResolvProjectile = "Projectile"

	// Role tags, set on fighters and on the projectiles they fire
	ResolvP1 = "P1"
	ResolvP2 = "P2"
)

// Role returns the resolv tag of a role.
func Role(role cfg.Role) string {
	if role == cfg.RoleP2 {
		return ResolvP2
	}
	return ResolvP1
}
