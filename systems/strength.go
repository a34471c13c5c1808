package systems

import (
	"time"

	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStrength runs the coarse strength-gain check on a wall-clock
// cadence instead of every simulation tick, so the reward for holding the
// center does not scale with frame rate. Execution stays on the tick
// thread; the interval only gates how often the pass fires.
func UpdateStrength(e *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)

	now := time.Now()
	if now.Before(arena.NextStrengthGain) {
		return
	}
	arena.NextStrengthGain = now.Add(time.Duration(cfg.Arena.StrengthIntervalMs) * time.Millisecond)

	ApplyStrengthGain(e)
}

// ApplyStrengthGain grants every fighter inside the center zone its
// variant-specific strength growth. Exposed separately so the cadence and
// the effect can be exercised independently.
func ApplyStrengthGain(e *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)

	tags.Fighter.Each(e.World, func(f *donburi.Entry) {
		obj := components.Object.Get(f)
		if !arena.InCenterZone(obj.CenterX(), obj.CenterY()) {
			return
		}
		fighter := components.Fighter.Get(f)
		fighter.Strength += cfg.Variants[fighter.Variant].StrengthGain
	})
}
