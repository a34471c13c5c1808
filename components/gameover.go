package components

import "github.com/yohamta/donburi"

// GameOverData holds the match result shown on the results screen. An
// empty WinnerName means a double knockout.
type GameOverData struct {
	WinnerName string
}

var GameOver = donburi.NewComponentType[GameOverData]()
