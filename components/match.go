package components

import (
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/yohamta/donburi"
)

type MatchData struct {
	State cfg.MatchStateID
	Timer int

	// Countdown display value (3..1, then -1 for GO)
	CountdownValue int

	// Set when the match finishes. Empty means a double knockout.
	WinnerName string
}

var Match = donburi.NewComponentType[MatchData]()
