package factory

import (
	"github.com/automoto/gravity-arena/archetypes"
	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// wallOffsets lays the four walls out at fixed cardinal offsets from the
// arena center: north, east, south, west.
var wallOffsets = [4][2]float64{
	{0, -1},
	{1, 0},
	{0, 1},
	{-1, 0},
}

// CreateWalls spawns the four repulsion walls around the given center.
func CreateWalls(e *ecs.ECS, centerX, centerY float64) []*donburi.Entry {
	walls := make([]*donburi.Entry, 0, len(wallOffsets))
	r := cfg.Arena.WallRadius
	for _, off := range wallOffsets {
		wx := centerX + off[0]*cfg.Arena.WallDistance
		wy := centerY + off[1]*cfg.Arena.WallDistance

		wall := archetypes.Wall.Spawn(e)
		obj := resolv.NewObject(wx-r, wy-r, r*2, r*2, tags.ResolvWall)
		obj.Data = wall
		components.Object.SetValue(wall, components.ObjectData{Object: obj})
		addToSpace(e, obj)

		walls = append(walls, wall)
	}
	return walls
}

// RecomputeWalls repositions the existing walls around a moved center.
// Wall iteration order matches the creation order, so each wall keeps its
// cardinal slot.
func RecomputeWalls(e *ecs.ECS, centerX, centerY float64) {
	i := 0
	tags.Wall.Each(e.World, func(wall *donburi.Entry) {
		if i >= len(wallOffsets) {
			return
		}
		off := wallOffsets[i]
		obj := components.Object.Get(wall)
		obj.SetCenter(centerX+off[0]*cfg.Arena.WallDistance, centerY+off[1]*cfg.Arena.WallDistance)
		obj.Update()
		i++
	})
}
