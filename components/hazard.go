package components

import "github.com/yohamta/donburi"

// HazardData drives the Heavy variant's rotating melee square. Angle
// advances every tick and positions the square at a fixed offset from the
// owner; the square itself is derived geometry and never persisted.
type HazardData struct {
	Angle float64

	// Touching edge-triggers hazard damage: a hit only lands on the
	// transition into contact.
	Touching bool
}

var Hazard = donburi.NewComponentType[HazardData]()
