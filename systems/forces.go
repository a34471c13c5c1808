package systems

import (
	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/gamemath"
	"github.com/automoto/gravity-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateForces integrates every fighter one explicit Euler step. The order
// is fixed: gravity toward the center, then damping, then position. Damping
// acts on the gravity-updated velocity before it moves the fighter, which
// gives the pull its slightly lagged, orbiting feel.
func UpdateForces(e *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)

	tags.Fighter.Each(e.World, func(f *donburi.Entry) {
		physics := components.Physics.Get(f)
		obj := components.Object.Get(f)

		// Gravity: skipped when the fighter sits exactly on the center,
		// where no pull direction exists.
		nx, ny, ok := gamemath.UnitVector(obj.CenterX(), obj.CenterY(), arena.CenterX, arena.CenterY)
		if ok {
			physics.VelX += nx * cfg.Arena.GravityStrength * physics.SpeedMult
			physics.VelY += ny * cfg.Arena.GravityStrength * physics.SpeedMult
		}

		physics.VelX *= cfg.Arena.Damping
		physics.VelY *= cfg.Arena.Damping

		obj.X += physics.VelX
		obj.Y += physics.VelY
		obj.Update()
	})
}
