package systems

import (
	"math"

	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena renders the whole simulation state: center zone, walls,
// fighters, the Heavy hazard square and any projectiles. Rendering only
// reads entity state; nothing here feeds back into the simulation.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)

	// Center zone
	vector.DrawFilledCircle(screen,
		float32(arena.CenterX), float32(arena.CenterY),
		float32(cfg.Arena.CenterZoneRadius), cfg.ZoneViolet, true)
	vector.StrokeCircle(screen,
		float32(arena.CenterX), float32(arena.CenterY),
		float32(cfg.Arena.CenterZoneRadius), 1, cfg.WallGray, true)

	tags.Wall.Each(e.World, func(w *donburi.Entry) {
		obj := components.Object.Get(w)
		vector.DrawFilledCircle(screen,
			float32(obj.CenterX()), float32(obj.CenterY()),
			float32(obj.W/2), cfg.WallGray, true)
	})

	tags.Fighter.Each(e.World, func(f *donburi.Entry) {
		drawFighter(screen, f)
	})

	components.Projectile.Each(e.World, func(p *donburi.Entry) {
		obj := components.Object.Get(p)
		vector.DrawFilledCircle(screen,
			float32(obj.CenterX()), float32(obj.CenterY()),
			float32(cfg.Archer.ProjectileRadius), cfg.White, true)
	})
}

func drawFighter(screen *ebiten.Image, f *donburi.Entry) {
	fighter := components.Fighter.Get(f)
	hp := components.Health.Get(f)
	obj := components.Object.Get(f)

	col := fighter.Color
	if hp.KnockedOut() {
		col = cfg.DarkGray
	}

	vector.DrawFilledCircle(screen,
		float32(obj.CenterX()), float32(obj.CenterY()),
		float32(fighter.Radius), col, true)

	if f.HasComponent(components.Shield) {
		shield := components.Shield.Get(f)
		if shield.Armed {
			vector.StrokeCircle(screen,
				float32(obj.CenterX()), float32(obj.CenterY()),
				float32(fighter.Radius)+4, 2, cfg.HUD.ShieldColor, true)
		}
	}
	if f.HasComponent(components.Hazard) {
		drawHazard(screen, f)
	}
}

// drawHazard outlines the rotating melee square at its derived position.
func drawHazard(screen *ebiten.Image, f *donburi.Entry) {
	hazard := components.Hazard.Get(f)
	obj := components.Object.Get(f)

	hx := obj.CenterX() + math.Cos(hazard.Angle)*cfg.Hazard.Offset
	hy := obj.CenterY() + math.Sin(hazard.Angle)*cfg.Hazard.Offset

	cos := math.Cos(hazard.Angle)
	sin := math.Sin(hazard.Angle)
	h := cfg.Hazard.HalfExtent

	corners := [4][2]float64{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
	var pts [4][2]float32
	for i, c := range corners {
		pts[i][0] = float32(hx + c[0]*cos - c[1]*sin)
		pts[i][1] = float32(hy + c[0]*sin + c[1]*cos)
	}
	for i := range pts {
		next := pts[(i+1)%4]
		vector.StrokeLine(screen, pts[i][0], pts[i][1], next[0], next[1], 2, cfg.Red, true)
	}
}
