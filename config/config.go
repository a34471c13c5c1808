package config

import "image/color"

// ArenaConfig contains the arena layout and global physics values.
type ArenaConfig struct {
	// Gravity well
	GravityStrength float64 // velocity gained toward center per tick
	Damping         float64 // velocity multiplier applied every tick (<1)

	// Walls
	WallDistance float64 // offset of each wall from the arena center
	WallRadius   float64
	WallDamping  float64 // scale for the reflected velocity component

	// Center zone
	CenterZoneRadius float64

	// Fighter spawn offset from center along the x axis
	SpawnOffset float64

	// Strength growth cadence
	StrengthIntervalMs int
}

// VariantConfig contains the base stats for one fighter variant.
type VariantConfig struct {
	Health          float64
	Strength        float64
	Radius          float64
	SpeedMult       float64 // scales the gravity pull
	DealsBodyDamage bool
	StrengthGain    float64 // per strength interval while in the center zone
	Color           color.RGBA
}

// RegenConfig tunes the Base variant's passive healing.
type RegenConfig struct {
	Interval  int     // ticks between heals
	Amount    float64 // hp restored per heal
	Threshold float64 // heal only below this fraction of max hp
}

// ShieldConfig tunes the Heavy variant's shield.
type ShieldConfig struct {
	ChargeTicks int // center-zone ticks required to arm
}

// HazardConfig tunes the Heavy variant's rotating melee square.
type HazardConfig struct {
	HalfExtent float64
	Offset     float64 // distance from the owner's center
	Spin       float64 // radians per tick
}

// ArcherConfig tunes the Archer variant's projectile emission.
type ArcherConfig struct {
	AimSpin             float64 // radians per tick
	BaseCooldown        float64 // ticks
	CooldownFloor       float64 // cooldown never resets below this
	CooldownPerStrength float64 // cooldown reduction per point of strength
	ProjectileSpeed     float64
	SpeedPerStrength    float64 // speed multiplier gained per point of strength
	ProjectileRadius    float64
	MaxRange            float64 // despawn distance from the owner
	VolleyCount         int
}

// SpecialConfig tunes the active abilities.
type SpecialConfig struct {
	DashMinDistance float64 // Base: dash only when farther than this from center
	DashImpulse     float64
	SlamRadius      float64 // Heavy: slam only when closer than this to center
	SlamImpulse     float64
}

// CollisionConfig tunes body-to-body resolution.
type CollisionConfig struct {
	Bounce float64 // amplification of the closing speed along the normal
	Kick   float64 // baseline impulse so resting overlaps still separate
}

// MatchConfig contains match flow timing.
type MatchConfig struct {
	CountdownDuration  int // frames
	ResultsDisplayTime int // frames before the game-over scene takes over
}

// MenuConfig contains variant-select menu layout values.
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	PanelY            float64
	PanelGap          float64
	HintY             float64
}

// GameOverConfig contains results screen layout values.
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	HintY           float64
}

// HUDConfig contains in-match overlay layout values.
type HUDConfig struct {
	BarWidth     float64
	BarHeight    float64
	Margin       float64
	BarBgColor   color.RGBA
	BarFgColor   color.RGBA
	ShieldColor  color.RGBA
	TweenSeconds float32 // duration of the displayed-hp ease
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options.
type DebugConfig struct {
	SkipMenu bool // skip the menu and start a Base vs Heavy match
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Variants map[VariantID]VariantConfig
var Regen RegenConfig
var Shield ShieldConfig
var Hazard HazardConfig
var Archer ArcherConfig
var Special SpecialConfig
var Collision CollisionConfig
var Match MatchConfig
var Menu MenuConfig
var GameOver GameOverConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	WallGray     = color.RGBA{R: 110, G: 110, B: 130, A: 255}
	ZoneViolet   = color.RGBA{R: 80, G: 50, B: 120, A: 70}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Arena = ArenaConfig{
		GravityStrength:    0.05,
		Damping:            0.98,
		WallDistance:       140.0,
		WallRadius:         30.0,
		WallDamping:        0.5,
		CenterZoneRadius:   70.0,
		SpawnOffset:        100.0,
		StrengthIntervalMs: 500,
	}

	Variants = map[VariantID]VariantConfig{
		VariantBase: {
			Health:          100,
			Strength:        2,
			Radius:          30,
			SpeedMult:       1.0,
			DealsBodyDamage: true,
			StrengthGain:    0.2,
			Color:           Blue,
		},
		VariantHeavy: {
			Health:          150,
			Strength:        4,
			Radius:          36,
			SpeedMult:       0.8,
			DealsBodyDamage: false, // hazard contact deals the damage instead
			StrengthGain:    0.1,
			Color:           Orange,
		},
		VariantArcher: {
			Health:          80,
			Strength:        3,
			Radius:          24,
			SpeedMult:       1.15,
			DealsBodyDamage: false, // projectiles deal the damage instead
			StrengthGain:    0.15,
			Color:           Green,
		},
	}

	Regen = RegenConfig{
		Interval:  120,
		Amount:    1,
		Threshold: 0.5,
	}

	Shield = ShieldConfig{
		ChargeTicks: 180,
	}

	Hazard = HazardConfig{
		HalfExtent: 18.0,
		Offset:     48.0,
		Spin:       0.06,
	}

	Archer = ArcherConfig{
		AimSpin:             0.04,
		BaseCooldown:        30.0,
		CooldownFloor:       5.0,
		CooldownPerStrength: 1.5,
		ProjectileSpeed:     4.0,
		SpeedPerStrength:    0.05,
		ProjectileRadius:    5.0,
		MaxRange:            280.0,
		VolleyCount:         8,
	}

	Special = SpecialConfig{
		DashMinDistance: 150.0,
		DashImpulse:     6.0,
		SlamRadius:      100.0,
		SlamImpulse:     12.0,
	}

	Collision = CollisionConfig{
		Bounce: 1.5,
		Kick:   1.0,
	}

	Match = MatchConfig{
		CountdownDuration:  180,
		ResultsDisplayTime: 120,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            60,
		PanelY:            150,
		PanelGap:          200,
		HintY:             330,
	}

	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:      LightRed,
		TextColor:       White,
		TitleY:          120,
		HintY:           260,
	}

	HUD = HUDConfig{
		BarWidth:     130,
		BarHeight:    13,
		Margin:       10,
		BarBgColor:   DarkGray,
		BarFgColor:   color.RGBA{R: 40, G: 220, B: 40, A: 255},
		ShieldColor:  color.RGBA{R: 80, G: 180, B: 255, A: 255},
		TweenSeconds: 0.25,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
