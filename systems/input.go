package systems

import (
	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/tags"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpecials maps each player's special key to their fighter. Fighter
// iteration order matches spawn order, so the first fighter is player one.
func UpdateSpecials(e *ecs.ECS) {
	pressed := []bool{
		inpututil.IsKeyJustPressed(cfg.Input.P1Special),
		inpututil.IsKeyJustPressed(cfg.Input.P2Special),
	}

	i := 0
	tags.Fighter.Each(e.World, func(f *donburi.Entry) {
		if i < len(pressed) && pressed[i] {
			hp := components.Health.Get(f)
			if !hp.KnockedOut() {
				UseSpecialAbility(e, f)
			}
		}
		i++
	})
}
