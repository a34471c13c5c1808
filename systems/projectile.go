package systems

import (
	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// moveProjectiles advances every live projectile by its velocity and prunes
// any that traveled beyond the maximum range from their owner. Runs as the
// tail of the archer passive so emission, motion and pruning stay in one
// tick-ordered sequence.
func moveProjectiles(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Projectile.Each(e.World, func(p *donburi.Entry) {
		projectile := components.Projectile.Get(p)
		obj := components.Object.Get(p)

		obj.X += projectile.VelX
		obj.Y += projectile.VelY
		obj.Update()

		if !e.World.Valid(projectile.Owner) {
			toRemove = append(toRemove, p)
			return
		}

		ownerObj := components.Object.Get(e.World.Entry(projectile.Owner))
		dist := gamemath.Distance(obj.CenterX(), obj.CenterY(), ownerObj.CenterX(), ownerObj.CenterY())
		if dist > cfg.Archer.MaxRange {
			toRemove = append(toRemove, p)
		}
	})

	for _, p := range toRemove {
		DespawnProjectile(e, p)
	}
}

// DespawnProjectile removes a projectile entity and its spatial object.
func DespawnProjectile(e *ecs.ECS, p *donburi.Entry) {
	obj := components.Object.Get(p)
	if obj != nil && obj.Object != nil {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	e.World.Remove(p.Entity())
}
