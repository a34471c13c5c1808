package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

// UpdateHUD eases each fighter's displayed hp toward its actual hp.
func UpdateHUD(e *ecs.ECS) {
	tags.Fighter.Each(e.World, func(f *donburi.Entry) {
		hp := components.Health.Get(f)
		bar := components.HPBar.Get(f)

		current := float32(hp.Current)
		if bar.Target != current {
			bar.Tween = gween.New(bar.Display, current, cfg.HUD.TweenSeconds, ease.OutQuad)
			bar.Target = current
		}
		bar.Display, _ = bar.Tween.Update(1.0 / 60.0)
	})
}

// DrawHUD renders both fighters' health bars, strength readouts and
// variant-specific status (shield charge, volley cooldown) in the top
// corners, plus countdown and result banners.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())

	i := 0
	tags.Fighter.Each(e.World, func(f *donburi.Entry) {
		x := cfg.HUD.Margin
		if i == 1 {
			x = width - cfg.HUD.Margin - cfg.HUD.BarWidth
		}
		drawFighterStatus(screen, f, x)
		i++
	})

	drawMatchBanner(e, screen)
}

func drawFighterStatus(screen *ebiten.Image, f *donburi.Entry, x float64) {
	fighter := components.Fighter.Get(f)
	hp := components.Health.Get(f)
	bar := components.HPBar.Get(f)

	y := cfg.HUD.Margin

	// Background, then eased fill
	vector.DrawFilledRect(screen,
		float32(x), float32(y),
		float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight),
		cfg.HUD.BarBgColor, false)

	ratio := bar.Display / float32(hp.Max)
	if ratio < 0 {
		ratio = 0
	}
	vector.DrawFilledRect(screen,
		float32(x), float32(y),
		float32(cfg.HUD.BarWidth)*ratio, float32(cfg.HUD.BarHeight),
		cfg.HUD.BarFgColor, false)

	label := fmt.Sprintf("%s [%s]  STR %.1f", fighter.Name, fighter.Variant, fighter.Strength)
	text.Draw(screen, label, basicfont.Face7x13, int(x), int(y+cfg.HUD.BarHeight)+14, cfg.White)

	if f.HasComponent(components.Shield) {
		shield := components.Shield.Get(f)
		status := fmt.Sprintf("shield %d/%d", shield.Charge, cfg.Shield.ChargeTicks)
		if shield.Armed {
			status = "SHIELD ARMED"
		}
		text.Draw(screen, status, basicfont.Face7x13, int(x), int(y+cfg.HUD.BarHeight)+28, cfg.HUD.ShieldColor)
	}
	if f.HasComponent(components.Aim) {
		aim := components.Aim.Get(f)
		status := fmt.Sprintf("reload %.0f", aim.Cooldown)
		text.Draw(screen, status, basicfont.Face7x13, int(x), int(y+cfg.HUD.BarHeight)+28, cfg.White)
	}
}

func drawMatchBanner(e *ecs.ECS, screen *ebiten.Image) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	width := float64(screen.Bounds().Dx())

	switch match.State {
	case cfg.MatchStateCountdown:
		banner := fmt.Sprintf("%d", match.CountdownValue)
		drawCentered(screen, banner, width, 60, cfg.BrightOrange)

	case cfg.MatchStateFinished:
		banner := "DOUBLE KNOCKOUT"
		if match.WinnerName != "" {
			banner = match.WinnerName + " WINS"
		}
		drawCentered(screen, banner, width, 60, cfg.BrightOrange)
	}
}

func drawCentered(screen *ebiten.Image, s string, width, y float64, col color.RGBA) {
	textWidth := len(s) * 7
	x := int((width - float64(textWidth)) / 2)
	text.Draw(screen, s, basicfont.Face7x13, x, int(y), col)
}
