package components

import "github.com/yohamta/donburi"

// AimData is the Archer variant's emission state: a continuously rotating
// aim angle and the cooldown until the next passive shot.
type AimData struct {
	Angle    float64
	Cooldown float64
}

var Aim = donburi.NewComponentType[AimData]()
