package components

import "github.com/yohamta/donburi"

// DamageEventData queues damage against an entity. The combat system drains
// it once per tick; intake-side overrides (the Heavy shield) apply there.
type DamageEventData struct {
	Amount float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
