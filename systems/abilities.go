package systems

import (
	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/gamemath"
	"github.com/automoto/gravity-arena/systems/factory"
	"github.com/automoto/gravity-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAbilities runs every fighter's passive ability for the tick. The
// variant is selected by the ability components present on the entity, not
// by any concrete type check.
func UpdateAbilities(e *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)

	tags.Fighter.Each(e.World, func(f *donburi.Entry) {
		switch {
		case f.HasComponent(components.Regen):
			regenPassive(f)
		case f.HasComponent(components.Hazard):
			heavyPassive(arena, f)
		case f.HasComponent(components.Aim):
			archerPassive(e, f)
		}
	})

	moveProjectiles(e)
}

// regenPassive slowly heals the Base variant: 1 hp per interval, but only
// while hurt below half health and not knocked out.
func regenPassive(f *donburi.Entry) {
	regen := components.Regen.Get(f)
	hp := components.Health.Get(f)

	regen.Timer++
	if hp.Current >= hp.Max*cfg.Regen.Threshold || hp.KnockedOut() {
		return
	}
	if regen.Timer < cfg.Regen.Interval {
		return
	}

	hp.Current = gamemath.Clamp(hp.Current+cfg.Regen.Amount, 0, hp.Max)
	regen.Timer = 0
}

// heavyPassive keeps the melee hazard spinning and charges the shield while
// the owner holds the center zone. The spin never pauses; the shield arms
// once per full charge and the charge always resets on arming.
func heavyPassive(arena *components.ArenaData, f *donburi.Entry) {
	hazard := components.Hazard.Get(f)
	hazard.Angle += cfg.Hazard.Spin

	shield := components.Shield.Get(f)
	obj := components.Object.Get(f)
	if arena.InCenterZone(obj.CenterX(), obj.CenterY()) {
		shield.Charge++
	}
	if shield.Charge >= cfg.Shield.ChargeTicks {
		shield.Armed = true
		shield.Charge = 0
	}
}

// archerPassive rotates the aim, counts the cooldown down and fires when it
// expires. Higher strength shortens the cooldown; the reset is clamped so
// it never drops below the floor.
func archerPassive(e *ecs.ECS, f *donburi.Entry) {
	aim := components.Aim.Get(f)
	fighter := components.Fighter.Get(f)

	aim.Angle += cfg.Archer.AimSpin
	aim.Cooldown--
	if aim.Cooldown > 0 {
		return
	}

	factory.SpawnProjectile(e, f, aim.Angle)

	aim.Cooldown = cfg.Archer.BaseCooldown - fighter.Strength*cfg.Archer.CooldownPerStrength
	if aim.Cooldown < cfg.Archer.CooldownFloor {
		aim.Cooldown = cfg.Archer.CooldownFloor
	}
}
