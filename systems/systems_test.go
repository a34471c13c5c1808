package systems

import (
	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testCenterX = 320.0
	testCenterY = 180.0
)

// newMatchECS builds a minimal match world: space, arena with a fixed
// random seed, and the four walls. Fighters are spawned by each test.
func newMatchECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateArena(e, testCenterX, testCenterY, 1)
	factory.CreateWalls(e, testCenterX, testCenterY)
	return e
}

func spawnTestFighter(e *ecs.ECS, variant cfg.VariantID, x, y float64, name string) *donburi.Entry {
	return factory.CreateFighter(e, variant, x, y, name, cfg.Variants[variant].Color)
}

func countProjectiles(e *ecs.ECS) int {
	n := 0
	components.Projectile.Each(e.World, func(_ *donburi.Entry) {
		n++
	})
	return n
}
