package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	VelX float64
	VelY float64

	// SpeedMult scales the gravity pull toward the arena center, so
	// heavier variants drift inward more slowly.
	SpeedMult float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
