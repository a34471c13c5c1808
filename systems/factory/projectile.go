package factory

import (
	"math"

	"github.com/automoto/gravity-arena/archetypes"
	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnProjectile emits a projectile from the owner along the given angle.
// Damage is copied from the owner's current strength; velocity scales with
// strength and inherits the owner's momentum.
func SpawnProjectile(e *ecs.ECS, owner *donburi.Entry, angle float64) *donburi.Entry {
	fighter := components.Fighter.Get(owner)
	physics := components.Physics.Get(owner)
	ownerObj := components.Object.Get(owner)

	speed := cfg.Archer.ProjectileSpeed * (1 + fighter.Strength*cfg.Archer.SpeedPerStrength)
	dirX := math.Cos(angle)
	dirY := math.Sin(angle)

	projectile := archetypes.Projectile.Spawn(e)

	r := cfg.Archer.ProjectileRadius
	obj := resolv.NewObject(ownerObj.CenterX()-r, ownerObj.CenterY()-r, r*2, r*2, tags.ResolvProjectile)
	obj.Data = projectile
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})

	components.Projectile.SetValue(projectile, components.ProjectileData{
		Owner:  owner.Entity(),
		Damage: fighter.Strength,
		VelX:   dirX*speed + physics.VelX,
		VelY:   dirY*speed + physics.VelY,
	})

	addToSpace(e, obj)

	return projectile
}
