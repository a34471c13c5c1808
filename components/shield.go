package components

import "github.com/yohamta/donburi"

// ShieldData is the Heavy variant's damage shield. Charge accumulates only
// while the owner holds the center zone; arming resets it to zero, as does
// consuming the shield.
type ShieldData struct {
	Charge int
	Armed  bool
}

var Shield = donburi.NewComponentType[ShieldData]()
