package systems

import (
	"fmt"
	"os"

	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// GetOrCreateMenu returns the menu entity, creating it on first use with
// the last saved loadout preselected.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if entry, ok := components.Menu.First(e.World); ok {
		return components.Menu.Get(entry)
	}

	entry := e.World.Entry(e.World.Create(components.Menu))
	menu := components.MenuData{}
	if saved, err := LoadLoadout(); err == nil && saved != nil {
		menu.P1Index = saved.P1Variant
		menu.P2Index = saved.P2Variant
	}
	components.Menu.SetValue(entry, menu)
	return components.Menu.Get(entry)
}

// NewUpdateMenu creates the variant-select system. Each player cycles
// through the variants independently; confirm starts the match with both
// selections and remembers them for next launch.
func NewUpdateMenu(sceneChanger SceneChanger, createArenaScene func(p1, p2 cfg.VariantID) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		n := len(cfg.AllVariants)

		if inpututil.IsKeyJustPressed(cfg.Input.P1CycleLeft) {
			menu.P1Index = (menu.P1Index - 1 + n) % n
		}
		if inpututil.IsKeyJustPressed(cfg.Input.P1CycleRight) {
			menu.P1Index = (menu.P1Index + 1) % n
		}
		if inpututil.IsKeyJustPressed(cfg.Input.P2CycleLeft) {
			menu.P2Index = (menu.P2Index - 1 + n) % n
		}
		if inpututil.IsKeyJustPressed(cfg.Input.P2CycleRight) {
			menu.P2Index = (menu.P2Index + 1) % n
		}

		if inpututil.IsKeyJustPressed(cfg.Input.Confirm) {
			_ = SaveLoadout(menu.P1Variant(), menu.P2Variant())
			sceneChanger.ChangeScene(createArenaScene(menu.P1Variant(), menu.P2Variant()))
			return
		}

		if inpututil.IsKeyJustPressed(cfg.Input.Back) {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the variant-select screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	screen.Fill(cfg.Menu.BackgroundColor)
	width := float64(screen.Bounds().Dx())

	drawCentered(screen, "GRAVITY ARENA", width, cfg.Menu.TitleY, cfg.Menu.TitleColor)

	drawVariantPanel(screen, "P1 (A/D)", menu.P1Index, width/2-cfg.Menu.PanelGap/2)
	drawVariantPanel(screen, "P2 (</>)", menu.P2Index, width/2+cfg.Menu.PanelGap/2)

	drawCentered(screen, "ENTER to fight - ESC to quit", width, cfg.Menu.HintY, cfg.Menu.TextColorNormal)
}

func drawVariantPanel(screen *ebiten.Image, title string, selected int, centerX float64) {
	y := cfg.Menu.PanelY
	text.Draw(screen, title, basicfont.Face7x13, int(centerX)-len(title)*7/2, int(y), cfg.Menu.TextColorNormal)

	for i, v := range cfg.AllVariants {
		label := v.String()
		col := cfg.Menu.TextColorNormal
		if i == selected {
			label = fmt.Sprintf("> %s <", label)
			col = cfg.Menu.TextColorSelected
		}
		ty := y + float64(20*(i+1))
		text.Draw(screen, label, basicfont.Face7x13, int(centerX)-len(label)*7/2, int(ty), col)
	}
}
