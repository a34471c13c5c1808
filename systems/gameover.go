package systems

import (
	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates the results-screen system: rematch with the
// same loadout or return to the variant select.
func NewUpdateGameOver(sceneChanger SceneChanger, createRematch func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if inpututil.IsKeyJustPressed(cfg.Input.Rematch) || inpututil.IsKeyJustPressed(cfg.Input.Confirm) {
			sceneChanger.ChangeScene(createRematch())
			return
		}
		if inpututil.IsKeyJustPressed(cfg.Input.Back) {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// DrawGameOver renders the match result screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	result := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	title := "DOUBLE KNOCKOUT"
	if result.WinnerName != "" {
		title = result.WinnerName + " WINS"
	}
	drawCentered(screen, title, width, cfg.GameOver.TitleY, cfg.GameOver.TitleColor)

	drawCentered(screen, "R rematch - ESC menu", width, cfg.GameOver.HintY, cfg.GameOver.TextColor)
}

// GetOrCreateGameOver returns the singleton result component, creating it
// if needed.
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
