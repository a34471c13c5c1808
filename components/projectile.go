package components

import "github.com/yohamta/donburi"

// ProjectileData is an Archer shot. Damage is copied from the owner's
// strength at emission time; the projectile despawns when it travels
// beyond the configured range from its owner or strikes a target.
type ProjectileData struct {
	Owner  donburi.Entity
	Damage float64
	VelX   float64
	VelY   float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
