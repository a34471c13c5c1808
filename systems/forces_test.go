package systems

import (
	"math"
	"testing"

	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
)

func TestForcesPullTowardCenterThenDamp(t *testing.T) {
	e := newMatchECS()
	f := spawnTestFighter(e, cfg.VariantBase, testCenterX+100, testCenterY, "P1")

	UpdateForces(e)

	physics := components.Physics.Get(f)
	obj := components.Object.Get(f)

	// Gravity first, damping second: vel = -0.05 * 0.98.
	wantVel := -cfg.Arena.GravityStrength * cfg.Arena.Damping
	if math.Abs(physics.VelX-wantVel) > 1e-12 {
		t.Fatalf("velX after one step = %v, want %v", physics.VelX, wantVel)
	}
	if physics.VelY != 0 {
		t.Fatalf("velY after one step = %v, want 0", physics.VelY)
	}

	// Position moves by the damped velocity, not the raw one.
	wantX := testCenterX + 100 + wantVel
	if math.Abs(obj.CenterX()-wantX) > 1e-9 {
		t.Fatalf("centerX after one step = %v, want %v", obj.CenterX(), wantX)
	}
}

func TestForcesScaleWithSpeedMult(t *testing.T) {
	e := newMatchECS()
	heavy := spawnTestFighter(e, cfg.VariantHeavy, testCenterX+100, testCenterY, "P1")
	archer := spawnTestFighter(e, cfg.VariantArcher, testCenterX-100, testCenterY, "P2")

	UpdateForces(e)

	heavyVel := math.Abs(components.Physics.Get(heavy).VelX)
	archerVel := math.Abs(components.Physics.Get(archer).VelX)
	if heavyVel >= archerVel {
		t.Fatalf("heavy pull %v should be weaker than archer pull %v", heavyVel, archerVel)
	}
}

func TestForcesSkipGravityAtExactCenter(t *testing.T) {
	e := newMatchECS()
	f := spawnTestFighter(e, cfg.VariantBase, testCenterX, testCenterY, "P1")

	UpdateForces(e)

	physics := components.Physics.Get(f)
	if physics.VelX != 0 || physics.VelY != 0 {
		t.Fatalf("fighter at the exact center gained velocity (%v,%v)", physics.VelX, physics.VelY)
	}
	obj := components.Object.Get(f)
	if obj.CenterX() != testCenterX || obj.CenterY() != testCenterY {
		t.Fatal("fighter at the exact center moved")
	}
}

func TestForcesDampExistingVelocity(t *testing.T) {
	e := newMatchECS()
	f := spawnTestFighter(e, cfg.VariantBase, testCenterX, testCenterY, "P1")

	physics := components.Physics.Get(f)
	physics.VelX = 10

	UpdateForces(e)

	if math.Abs(physics.VelX-10*cfg.Arena.Damping) > 1e-12 {
		t.Fatalf("velX = %v, want %v", physics.VelX, 10*cfg.Arena.Damping)
	}
}
