package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HPBarData eases the HUD's displayed hp toward the fighter's actual hp so
// damage spikes read as a short slide instead of a jump.
type HPBarData struct {
	Display float32
	Target  float32
	Tween   *gween.Tween
}

var HPBar = donburi.NewComponentType[HPBarData]()
