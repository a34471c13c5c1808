package main

import (
	"flag"
	"log"

	"github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/scenes"
	"github.com/automoto/gravity-arena/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Recenterer is implemented by scenes whose layout follows the screen
// center (the arena scene).
type Recenterer interface {
	Recenter(centerX, centerY float64)
}

type Game struct {
	width, height int
	scene         Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		width:  config.C.Width,
		height: config.C.Height,
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewArenaScene(g, config.VariantBase, config.VariantHeavy)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout tracks the window size so the arena re-centers when it changes.
func (g *Game) Layout(width, height int) (int, int) {
	if width != g.width || height != g.height {
		g.width = width
		g.height = height
		config.C.Width = width
		config.C.Height = height

		if r, ok := g.scene.(Recenterer); ok {
			r.Recenter(float64(width)/2, float64(height)/2)
		}
	}
	return g.width, g.height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "skip the menu and start a Base vs Heavy match")
	flag.Parse()

	ebiten.SetWindowTitle("Gravity Arena")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Persistence failures are non-fatal; the menu just loses its memory.
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
