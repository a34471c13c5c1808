package tags

import "github.com/yohamta/donburi"

var (
	Fighter    = donburi.NewTag().SetName("Fighter")
	Wall       = donburi.NewTag().SetName("Wall")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for spatial queries
const (
	ResolvFighter    = "fighter"
	ResolvWall       = "wall"
	ResolvProjectile = "projectile"
)
