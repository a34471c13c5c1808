package components

import "github.com/yohamta/donburi"

// RegenData is the Base variant's passive healing timer. The timer resets
// whenever a heal fires.
type RegenData struct {
	Timer int
}

var Regen = donburi.NewComponentType[RegenData]()
