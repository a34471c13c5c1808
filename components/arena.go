package components

import (
	"math/rand"
	"time"

	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/gamemath"
	"github.com/yohamta/donburi"
)

// ArenaData is the singleton arena state: the gravity-well center, the
// seeded random source for collision impulses, and the wall-clock deadline
// for the next strength-gain pass. The center moves only when the window
// is resized; walls are recomputed when it does.
type ArenaData struct {
	CenterX float64
	CenterY float64

	Rng *rand.Rand

	NextStrengthGain time.Time
}

// InCenterZone reports whether a point lies inside the center zone.
func (a *ArenaData) InCenterZone(x, y float64) bool {
	return gamemath.Distance(x, y, a.CenterX, a.CenterY) < cfg.Arena.CenterZoneRadius
}

var Arena = donburi.NewComponentType[ArenaData]()
