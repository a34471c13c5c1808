package components

import (
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/yohamta/donburi"
)

// MenuData holds the variant-select state for both players.
type MenuData struct {
	P1Index int
	P2Index int
}

// P1Variant returns player one's currently highlighted variant.
func (m *MenuData) P1Variant() cfg.VariantID {
	return cfg.AllVariants[m.P1Index]
}

// P2Variant returns player two's currently highlighted variant.
func (m *MenuData) P2Variant() cfg.VariantID {
	return cfg.AllVariants[m.P2Index]
}

var Menu = donburi.NewComponentType[MenuData]()
