package systems

import (
	"math"
	"testing"

	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/yohamta/donburi"
)

func TestBurstDashRequiresDistance(t *testing.T) {
	e := newMatchECS()
	near := spawnTestFighter(e, cfg.VariantBase, testCenterX+100, testCenterY, "P1")

	UseSpecialAbility(e, near)
	physics := components.Physics.Get(near)
	if physics.VelX != 0 || physics.VelY != 0 {
		t.Fatalf("dash fired inside the threshold: vel = (%v,%v)", physics.VelX, physics.VelY)
	}
}

func TestBurstDashImpulseTowardCenter(t *testing.T) {
	e := newMatchECS()
	far := spawnTestFighter(e, cfg.VariantBase, testCenterX+200, testCenterY, "P1")

	UseSpecialAbility(e, far)
	physics := components.Physics.Get(far)
	if physics.VelX != -cfg.Special.DashImpulse {
		t.Fatalf("dash velX = %v, want %v", physics.VelX, -cfg.Special.DashImpulse)
	}
	if physics.VelY != 0 {
		t.Fatalf("dash velY = %v, want 0", physics.VelY)
	}
}

func TestGroundSlamPushesAwayFromCenter(t *testing.T) {
	e := newMatchECS()
	f := spawnTestFighter(e, cfg.VariantHeavy, testCenterX+50, testCenterY, "P1")

	UseSpecialAbility(e, f)
	physics := components.Physics.Get(f)
	if physics.VelX != cfg.Special.SlamImpulse {
		t.Fatalf("slam velX = %v, want %v", physics.VelX, cfg.Special.SlamImpulse)
	}
}

func TestGroundSlamRequiresProximity(t *testing.T) {
	e := newMatchECS()
	f := spawnTestFighter(e, cfg.VariantHeavy, testCenterX+150, testCenterY, "P1")

	UseSpecialAbility(e, f)
	physics := components.Physics.Get(f)
	if physics.VelX != 0 || physics.VelY != 0 {
		t.Fatalf("slam fired outside its radius: vel = (%v,%v)", physics.VelX, physics.VelY)
	}
}

func TestGroundSlamAtExactCenterDoesNothing(t *testing.T) {
	e := newMatchECS()
	f := spawnTestFighter(e, cfg.VariantHeavy, testCenterX, testCenterY, "P1")

	UseSpecialAbility(e, f)
	physics := components.Physics.Get(f)
	if physics.VelX != 0 || physics.VelY != 0 {
		t.Fatalf("slam with no outward direction moved the fighter: vel = (%v,%v)", physics.VelX, physics.VelY)
	}
}

func TestVolleyFiresFullRingWithoutTouchingCooldown(t *testing.T) {
	e := newMatchECS()
	f := spawnTestFighter(e, cfg.VariantArcher, testCenterX+100, testCenterY, "P1")
	aim := components.Aim.Get(f)
	aim.Cooldown = 17

	UseSpecialAbility(e, f)

	if n := countProjectiles(e); n != cfg.Archer.VolleyCount {
		t.Fatalf("projectile count = %d, want %d", n, cfg.Archer.VolleyCount)
	}
	if aim.Cooldown != 17 {
		t.Fatalf("volley changed the passive cooldown: %v", aim.Cooldown)
	}

	// Directions are evenly spaced: collect the angle of every projectile
	// and check the spacing against the expected step.
	var angles []float64
	components.Projectile.Each(e.World, func(p *donburi.Entry) {
		projectile := components.Projectile.Get(p)
		angles = append(angles, math.Atan2(projectile.VelY, projectile.VelX))
	})

	step := 2 * math.Pi / float64(cfg.Archer.VolleyCount)
	for i := 1; i < len(angles); i++ {
		diff := math.Mod(angles[i]-angles[i-1]+2*math.Pi, 2*math.Pi)
		if math.Abs(diff-step) > 1e-9 {
			t.Fatalf("projectile %d spacing = %v, want %v", i, diff, step)
		}
	}
}
