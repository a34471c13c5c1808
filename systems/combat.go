package systems

import (
	"log"
	"math"

	"github.com/automoto/gravity-arena/components"
	"github.com/automoto/gravity-arena/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// queueDamage accumulates damage against a target for this tick. Collision
// code calls this instead of touching health so every intake-side rule
// (shield, knockout immunity, clamping) lives in one place.
func queueDamage(target *donburi.Entry, amount float64) {
	if target.HasComponent(components.DamageEvent) {
		event := components.DamageEvent.Get(target)
		event.Amount += amount
		return
	}
	donburi.Add(target, components.DamageEvent, &components.DamageEventData{Amount: amount})
}

// UpdateCombat drains queued damage events and keeps health in range. The
// Heavy shield override applies here: an armed shield halves the incoming
// amount (rounded down) and disarms, no matter how much it absorbed.
// Knocked-out fighters ignore damage entirely but stay in the simulation.
func UpdateCombat(e *ecs.ECS) {
	for target := range components.DamageEvent.Iter(e.World) {
		amount := components.DamageEvent.Get(target).Amount
		donburi.Remove[components.DamageEventData](target, components.DamageEvent)

		hp := components.Health.Get(target)
		if hp.KnockedOut() {
			continue
		}

		if target.HasComponent(components.Shield) {
			shield := components.Shield.Get(target)
			if shield.Armed {
				amount = math.Floor(amount / 2)
				shield.Armed = false
				shield.Charge = 0
			}
		}

		hp.Current = gamemath.Clamp(hp.Current-amount, 0, hp.Max)

		if hp.KnockedOut() {
			fighter := components.Fighter.Get(target)
			log.Printf("%s is knocked out", fighter.Name)
		}
	}
}
