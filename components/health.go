package components

import "github.com/yohamta/donburi"

// HealthData tracks hit points. Current is clamped to [0, Max] on every
// write; 0 is terminal (knocked out).
type HealthData struct {
	Current float64
	Max     float64
}

// KnockedOut reports whether the fighter has reached the terminal state.
func (h *HealthData) KnockedOut() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
