package systems

import (
	"math"

	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/gamemath"
	"github.com/automoto/gravity-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UseSpecialAbility triggers a fighter's active ability. Dispatch follows
// the same ability components the passives use.
func UseSpecialAbility(e *ecs.ECS, f *donburi.Entry) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)

	switch {
	case f.HasComponent(components.Hazard):
		groundSlam(arena, f)
	case f.HasComponent(components.Aim):
		volley(e, f)
	default:
		burstDash(arena, f)
	}
}

// burstDash kicks the Base variant back toward the center, but only when it
// has drifted far enough out for the dash to matter.
func burstDash(arena *components.ArenaData, f *donburi.Entry) {
	obj := components.Object.Get(f)
	if gamemath.Distance(obj.CenterX(), obj.CenterY(), arena.CenterX, arena.CenterY) <= cfg.Special.DashMinDistance {
		return
	}

	nx, ny, ok := gamemath.UnitVector(obj.CenterX(), obj.CenterY(), arena.CenterX, arena.CenterY)
	if !ok {
		return
	}
	physics := components.Physics.Get(f)
	physics.VelX += nx * cfg.Special.DashImpulse
	physics.VelY += ny * cfg.Special.DashImpulse
}

// groundSlam launches the Heavy variant away from the center - the opposite
// sense of gravity - when it stands near the well.
func groundSlam(arena *components.ArenaData, f *donburi.Entry) {
	obj := components.Object.Get(f)
	dist := gamemath.Distance(obj.CenterX(), obj.CenterY(), arena.CenterX, arena.CenterY)
	if dist >= cfg.Special.SlamRadius {
		return
	}

	nx, ny, ok := gamemath.UnitVector(arena.CenterX, arena.CenterY, obj.CenterX(), obj.CenterY())
	if !ok {
		// Sitting exactly on the center leaves no outward direction.
		return
	}
	physics := components.Physics.Get(f)
	physics.VelX += nx * cfg.Special.SlamImpulse
	physics.VelY += ny * cfg.Special.SlamImpulse
}

// volley fires a full ring of projectiles at once, evenly spaced from the
// current aim angle. The passive cooldown is untouched.
func volley(e *ecs.ECS, f *donburi.Entry) {
	aim := components.Aim.Get(f)
	step := 2 * math.Pi / float64(cfg.Archer.VolleyCount)
	for i := 0; i < cfg.Archer.VolleyCount; i++ {
		factory.SpawnProjectile(e, f, aim.Angle+float64(i)*step)
	}
}
