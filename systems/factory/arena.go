package factory

import (
	"math/rand"

	"github.com/automoto/gravity-arena/archetypes"
	"github.com/automoto/gravity-arena/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena spawns the singleton arena entity. The seed feeds the random
// source used for collision impulses; pass a fixed seed for reproducible
// trajectories.
func CreateArena(e *ecs.ECS, centerX, centerY float64, seed int64) *donburi.Entry {
	arena := archetypes.Arena.Spawn(e)
	components.Arena.SetValue(arena, components.ArenaData{
		CenterX: centerX,
		CenterY: centerY,
		Rng:     rand.New(rand.NewSource(seed)),
	})
	components.Contact.SetValue(arena, components.ContactData{})
	return arena
}
