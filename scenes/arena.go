package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/gravity-arena/archetypes"
	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/systems"
	"github.com/automoto/gravity-arena/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one match between the two selected variants.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	p1, p2       cfg.VariantID
	once         sync.Once
}

// NewArenaScene creates a match scene for the given loadout.
func NewArenaScene(sc SceneChanger, p1, p2 cfg.VariantID) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, p1: p1, p2: p2}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if systems.IsMatchFinished(as.ecs) {
		winner := ""
		if matchEntry, ok := components.Match.First(as.ecs.World); ok {
			winner = components.Match.Get(matchEntry).WinnerName
		}
		as.sceneChanger.ChangeScene(NewGameOverScene(as.sceneChanger, winner, as.p1, as.p2))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// Recenter moves the gravity well to a new screen center and repositions
// the walls around it. Called by the host when the window is resized.
func (as *ArenaScene) Recenter(centerX, centerY float64) {
	if as.ecs == nil {
		return
	}
	arenaEntry, ok := components.Arena.First(as.ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	arena.CenterX = centerX
	arena.CenterY = centerY
	factory.RecomputeWalls(as.ecs, centerX, centerY)
}

func (as *ArenaScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Match flow always runs; gameplay systems only during Playing.
	e.AddSystem(systems.UpdateMatch)
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpecials))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateForces))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAbilities))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateStrength))
	e.AddSystem(systems.UpdateHUD)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	as.ecs = e

	centerX := float64(cfg.C.Width) / 2
	centerY := float64(cfg.C.Height) / 2

	// Space before anything that owns a resolv object.
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateArena(e, centerX, centerY, time.Now().UnixNano())
	factory.CreateWalls(e, centerX, centerY)

	p1Color := cfg.Variants[as.p1].Color
	p2Color := cfg.Variants[as.p2].Color
	factory.CreateFighter(e, as.p1, centerX-cfg.Arena.SpawnOffset, centerY, "P1", p1Color)
	factory.CreateFighter(e, as.p2, centerX+cfg.Arena.SpawnOffset, centerY, "P2", p2Color)

	createMatch(e)
}

// createMatch spawns the match entity and starts the countdown.
func createMatch(e *ecs.ECS) {
	matchEntry := archetypes.Match.Spawn(e)
	components.Match.SetValue(matchEntry, components.MatchData{
		State:          cfg.MatchStateCountdown,
		Timer:          cfg.Match.CountdownDuration,
		CountdownValue: 3,
	})
}
