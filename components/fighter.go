package components

import (
	"image/color"

	cfg "github.com/automoto/gravity-arena/config"
	"github.com/yohamta/donburi"
)

type FighterData struct {
	Variant cfg.VariantID
	Name    string
	Color   color.RGBA

	// Strength grows while holding the center zone and scales body,
	// hazard and projectile damage.
	Strength float64

	// Radius and DealsBodyDamage are fixed at creation.
	Radius          float64
	DealsBodyDamage bool
}

var Fighter = donburi.NewComponentType[FighterData]()
