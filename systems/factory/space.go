package factory

import (
	"github.com/automoto/gravity-arena/archetypes"
	"github.com/automoto/gravity-arena/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the singleton resolv space used for broadphase
// queries. Must be created before any entity that owns a resolv object.
func CreateSpace(e *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	spaceEntry := archetypes.Space.Spawn(e)
	space := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(spaceEntry, space)
	return spaceEntry
}
