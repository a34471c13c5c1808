package factory

import (
	"image/color"

	"github.com/automoto/gravity-arena/archetypes"
	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns a fighter of the given variant centered at (x, y).
// Unknown variant tags fall back to the Base variant rather than failing.
func CreateFighter(e *ecs.ECS, variant cfg.VariantID, x, y float64, name string, col color.RGBA) *donburi.Entry {
	stats, ok := cfg.Variants[variant]
	if !ok {
		variant = cfg.VariantBase
		stats = cfg.Variants[variant]
	}

	fighter := archetypes.Fighter.Spawn(e)

	obj := resolv.NewObject(x-stats.Radius, y-stats.Radius, stats.Radius*2, stats.Radius*2, tags.ResolvFighter)
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	components.Fighter.SetValue(fighter, components.FighterData{
		Variant:         variant,
		Name:            name,
		Color:           col,
		Strength:        stats.Strength,
		Radius:          stats.Radius,
		DealsBodyDamage: stats.DealsBodyDamage,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: stats.Health,
		Max:     stats.Health,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{
		SpeedMult: stats.SpeedMult,
	})
	components.HPBar.SetValue(fighter, components.HPBarData{
		Display: float32(stats.Health),
		Target:  float32(stats.Health),
		Tween:   gween.New(float32(stats.Health), float32(stats.Health), cfg.HUD.TweenSeconds, ease.OutQuad),
	})

	// Variant-specific ability state
	switch variant {
	case cfg.VariantHeavy:
		donburi.Add(fighter, components.Hazard, &components.HazardData{})
		donburi.Add(fighter, components.Shield, &components.ShieldData{})
	case cfg.VariantArcher:
		donburi.Add(fighter, components.Aim, &components.AimData{Cooldown: cfg.Archer.BaseCooldown})
	default:
		donburi.Add(fighter, components.Regen, &components.RegenData{})
	}

	addToSpace(e, obj)

	return fighter
}

func addToSpace(e *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
