package components

import "github.com/yohamta/donburi"

// ContactData is the collision engine's per-pair contact state for the two
// fighters. Body damage is edge-triggered: it fires when Body flips from
// false to true and the flag only falls once the circles fully separate
// with no hazard or projectile hit active.
type ContactData struct {
	Body bool
}

var Contact = donburi.NewComponentType[ContactData]()
