package config

import "github.com/hajimehoshi/ebiten/v2"

// InputConfig contains the fixed key bindings for local two-player play.
type InputConfig struct {
	P1Special ebiten.Key
	P2Special ebiten.Key

	P1CycleLeft  ebiten.Key
	P1CycleRight ebiten.Key
	P2CycleLeft  ebiten.Key
	P2CycleRight ebiten.Key

	Confirm ebiten.Key
	Back    ebiten.Key
	Rematch ebiten.Key
}

var Input InputConfig

func init() {
	Input = InputConfig{
		P1Special: ebiten.KeyE,
		P2Special: ebiten.KeyK,

		P1CycleLeft:  ebiten.KeyA,
		P1CycleRight: ebiten.KeyD,
		P2CycleLeft:  ebiten.KeyArrowLeft,
		P2CycleRight: ebiten.KeyArrowRight,

		Confirm: ebiten.KeyEnter,
		Back:    ebiten.KeyEscape,
		Rematch: ebiten.KeyR,
	}
}
