package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the match result and offers a rematch with the
// same loadout.
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	winnerName   string
	p1, p2       cfg.VariantID
	once         sync.Once
}

// NewGameOverScene creates a results scene for a finished match.
func NewGameOverScene(sc SceneChanger, winnerName string, p1, p2 cfg.VariantID) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, winnerName: winnerName, p1: p1, p2: p2}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createRematch := func() interface{} {
		return NewArenaScene(gs.sceneChanger, gs.p1, gs.p2)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createRematch, createMenuScene))
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	systems.GetOrCreateGameOver(gs.ecs).WinnerName = gs.winnerName
}
