package systems

import (
	"math"
	"testing"

	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/gamemath"
	"github.com/automoto/gravity-arena/systems/factory"
)

func TestBodyCollisionDamagesOnceAndSeparates(t *testing.T) {
	e := newMatchECS()
	a := spawnTestFighter(e, cfg.VariantBase, testCenterX-20, testCenterY, "P1")
	b := spawnTestFighter(e, cfg.VariantBase, testCenterX+20, testCenterY, "P2")

	UpdateCollisions(e)

	// Both Base fighters deal body damage equal to their strength.
	if !a.HasComponent(components.DamageEvent) || !b.HasComponent(components.DamageEvent) {
		t.Fatal("body contact did not queue damage on both fighters")
	}
	if amt := components.DamageEvent.Get(a).Amount; amt != cfg.Variants[cfg.VariantBase].Strength {
		t.Fatalf("damage on a = %v, want %v", amt, cfg.Variants[cfg.VariantBase].Strength)
	}

	// Overlap split evenly: centers end exactly one diameter apart.
	aObj := components.Object.Get(a)
	bObj := components.Object.Get(b)
	dist := gamemath.Distance(aObj.CenterX(), aObj.CenterY(), bObj.CenterX(), bObj.CenterY())
	wantDist := cfg.Variants[cfg.VariantBase].Radius * 2
	if math.Abs(dist-wantDist) > 1e-9 {
		t.Fatalf("post-separation distance = %v, want %v", dist, wantDist)
	}

	// Repulsive impulse pushes the two apart along the contact normal.
	aPhys := components.Physics.Get(a)
	bPhys := components.Physics.Get(b)
	if aPhys.VelX >= 0 || bPhys.VelX <= 0 {
		t.Fatalf("impulse not repulsive: velA.x=%v velB.x=%v", aPhys.VelX, bPhys.VelX)
	}
}

func TestBodyDamageIsEdgeTriggered(t *testing.T) {
	e := newMatchECS()
	a := spawnTestFighter(e, cfg.VariantBase, testCenterX-20, testCenterY, "P1")
	b := spawnTestFighter(e, cfg.VariantBase, testCenterX+20, testCenterY, "P2")

	UpdateCollisions(e)
	UpdateCombat(e)

	// Force the pair back into overlap while the contact flag is still set:
	// staying in contact must not deal damage again.
	components.Object.Get(a).SetCenter(testCenterX-20, testCenterY)
	components.Object.Get(b).SetCenter(testCenterX+20, testCenterY)
	components.Object.Get(a).Update()
	components.Object.Get(b).Update()

	UpdateCollisions(e)
	if a.HasComponent(components.DamageEvent) || b.HasComponent(components.DamageEvent) {
		t.Fatal("sustained contact queued a second round of body damage")
	}
}

func TestHazardHitSuppressesBodyDamageAndEdgeTriggers(t *testing.T) {
	e := newMatchECS()
	heavy := spawnTestFighter(e, cfg.VariantHeavy, testCenterX-50, testCenterY, "P1")
	base := spawnTestFighter(e, cfg.VariantBase, testCenterX, testCenterY, "P2")

	// Hazard angle 0 places the square directly between the two fighters,
	// containing the base fighter's center.
	UpdateCollisions(e)

	if !base.HasComponent(components.DamageEvent) {
		t.Fatal("hazard contact queued no damage")
	}
	if amt := components.DamageEvent.Get(base).Amount; amt != cfg.Variants[cfg.VariantHeavy].Strength {
		t.Fatalf("hazard damage = %v, want %v", amt, cfg.Variants[cfg.VariantHeavy].Strength)
	}

	// The bodies overlap on the same tick, but the hazard hit wins the
	// priority order: no body damage lands on the heavy.
	if heavy.HasComponent(components.DamageEvent) {
		t.Fatal("body damage queued on a tick already resolved by the hazard")
	}

	// Staying inside the square must not queue more damage.
	UpdateCombat(e)
	UpdateCollisions(e)
	if base.HasComponent(components.DamageEvent) {
		t.Fatal("sustained hazard contact queued a second hit")
	}
}

func TestProjectileHitDamagesAndDespawns(t *testing.T) {
	e := newMatchECS()
	archer := spawnTestFighter(e, cfg.VariantArcher, testCenterX-150, testCenterY, "P1")
	base := spawnTestFighter(e, cfg.VariantBase, testCenterX+150, testCenterY, "P2")

	p := factory.SpawnProjectile(e, archer, 0)
	baseObj := components.Object.Get(base)
	obj := components.Object.Get(p)
	obj.SetCenter(baseObj.CenterX(), baseObj.CenterY())
	obj.Update()

	UpdateCollisions(e)

	if !base.HasComponent(components.DamageEvent) {
		t.Fatal("projectile hit queued no damage")
	}
	if amt := components.DamageEvent.Get(base).Amount; amt != cfg.Variants[cfg.VariantArcher].Strength {
		t.Fatalf("projectile damage = %v, want %v", amt, cfg.Variants[cfg.VariantArcher].Strength)
	}
	if n := countProjectiles(e); n != 0 {
		t.Fatalf("projectile survived its own hit: count = %d", n)
	}
}

func TestWallResolutionLeavesZeroOverlap(t *testing.T) {
	e := newMatchECS()
	// East wall sits at center + (140, 0) with radius 30. A fighter of
	// radius 30 placed 50 away overlaps it by 10.
	f := spawnTestFighter(e, cfg.VariantBase, testCenterX+90, testCenterY, "P1")
	spawnTestFighter(e, cfg.VariantBase, testCenterX-100, testCenterY, "P2")

	physics := components.Physics.Get(f)
	physics.VelX = 2 // moving into the wall

	UpdateCollisions(e)

	obj := components.Object.Get(f)
	wallX := testCenterX + cfg.Arena.WallDistance
	dist := gamemath.Distance(obj.CenterX(), obj.CenterY(), wallX, testCenterY)
	wantDist := cfg.Variants[cfg.VariantBase].Radius + cfg.Arena.WallRadius
	if math.Abs(dist-wantDist) > 1e-9 {
		t.Fatalf("distance to wall after resolution = %v, want %v", dist, wantDist)
	}

	// The inbound velocity component reflects, scaled by the wall damping.
	wantVel := -2 * cfg.Arena.WallDamping
	if math.Abs(physics.VelX-wantVel) > 1e-9 {
		t.Fatalf("velX after wall bounce = %v, want %v", physics.VelX, wantVel)
	}
}

func TestWallIgnoresFighterMovingAway(t *testing.T) {
	e := newMatchECS()
	f := spawnTestFighter(e, cfg.VariantBase, testCenterX+90, testCenterY, "P1")
	spawnTestFighter(e, cfg.VariantBase, testCenterX-100, testCenterY, "P2")

	physics := components.Physics.Get(f)
	physics.VelX = -2 // already moving away from the east wall

	UpdateCollisions(e)

	if physics.VelX != -2 {
		t.Fatalf("outbound velocity changed: velX = %v", physics.VelX)
	}
}
