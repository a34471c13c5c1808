package systems

import (
	"math"

	"github.com/automoto/gravity-arena/components"
	cfg "github.com/automoto/gravity-arena/config"
	"github.com/automoto/gravity-arena/gamemath"
	"github.com/automoto/gravity-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions detects and resolves every contact for the tick, in a
// fixed priority order so a single touch never counts as multiple damage
// events: melee hazard, then projectiles, then body-to-body damage, then
// positional separation with impulse, then walls. Damage goes out as
// DamageEvents; this system never writes health directly.
func UpdateCollisions(e *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	contact := components.Contact.Get(arenaEntry)

	var fighters []*donburi.Entry
	tags.Fighter.Each(e.World, func(f *donburi.Entry) {
		fighters = append(fighters, f)
	})

	specialHit := false
	if len(fighters) == 2 {
		a, b := fighters[0], fighters[1]

		// 1. Melee hazard vs the opposing fighter (both directions)
		if resolveHazard(a, b) {
			specialHit = true
		}
		if resolveHazard(b, a) {
			specialHit = true
		}

		// 2. Projectiles vs the opposing fighter
		if resolveProjectiles(e, a, b) {
			specialHit = true
		}

		// 3 + 4. Body damage and positional response
		resolveBody(arena, contact, a, b, specialHit)
	}

	// 5. Walls, each fighter against each wall independently
	for _, f := range fighters {
		resolveWalls(f)
	}
}

// resolveHazard tests the owner's rotating square against the target and
// applies the owner's strength as damage on a new hit. The hit is
// edge-triggered through HazardData.Touching.
func resolveHazard(owner, target *donburi.Entry) bool {
	if !owner.HasComponent(components.Hazard) {
		return false
	}

	hazard := components.Hazard.Get(owner)
	ownerObj := components.Object.Get(owner)
	targetObj := components.Object.Get(target)
	targetFighter := components.Fighter.Get(target)

	hx := ownerObj.CenterX() + math.Cos(hazard.Angle)*cfg.Hazard.Offset
	hy := ownerObj.CenterY() + math.Sin(hazard.Angle)*cfg.Hazard.Offset

	hit := gamemath.PointInRotatedSquare(targetObj.CenterX(), targetObj.CenterY(), hx, hy, cfg.Hazard.HalfExtent, hazard.Angle)
	if !hit {
		// Coarse fallback: the square's center buried inside the target's
		// circle counts even when the target's center misses the square.
		hit = gamemath.Distance(targetObj.CenterX(), targetObj.CenterY(), hx, hy) < targetFighter.Radius
	}

	if hit && !hazard.Touching {
		ownerFighter := components.Fighter.Get(owner)
		queueDamage(target, ownerFighter.Strength)
	}
	hazard.Touching = hit
	return hit
}

// resolveProjectiles strikes the fighter opposing each projectile's owner.
// A hit despawns the projectile and delivers its carried damage.
func resolveProjectiles(e *ecs.ECS, a, b *donburi.Entry) bool {
	anyHit := false
	var toRemove []*donburi.Entry

	components.Projectile.Each(e.World, func(p *donburi.Entry) {
		projectile := components.Projectile.Get(p)

		target := a
		if projectile.Owner == a.Entity() {
			target = b
		}

		obj := components.Object.Get(p)
		targetObj := components.Object.Get(target)
		targetFighter := components.Fighter.Get(target)

		dist := gamemath.Distance(obj.CenterX(), obj.CenterY(), targetObj.CenterX(), targetObj.CenterY())
		if dist < cfg.Archer.ProjectileRadius+targetFighter.Radius {
			queueDamage(target, projectile.Damage)
			toRemove = append(toRemove, p)
			anyHit = true
		}
	})

	for _, p := range toRemove {
		DespawnProjectile(e, p)
	}
	return anyHit
}

// resolveBody handles steps 3 and 4: edge-triggered body damage, then
// positional separation and a randomized repulsive impulse whenever the
// circles overlap at all.
func resolveBody(arena *components.ArenaData, contact *components.ContactData, a, b *donburi.Entry, specialHit bool) {
	aObj := components.Object.Get(a)
	bObj := components.Object.Get(b)
	aFighter := components.Fighter.Get(a)
	bFighter := components.Fighter.Get(b)

	overlap, overlapping := gamemath.CirclesOverlap(
		aObj.CenterX(), aObj.CenterY(), aFighter.Radius,
		bObj.CenterX(), bObj.CenterY(), bFighter.Radius,
	)

	if !overlapping {
		if !specialHit {
			contact.Body = false
		}
		return
	}

	// 3. Body damage fires once on the transition into contact, and never
	// on a tick already resolved by a hazard or projectile.
	if !contact.Body && !specialHit {
		if aFighter.DealsBodyDamage {
			queueDamage(b, aFighter.Strength)
		}
		if bFighter.DealsBodyDamage {
			queueDamage(a, bFighter.Strength)
		}
	}
	contact.Body = true

	// 4. Separation and impulse. Coincident centers leave no collision
	// normal, so the response is skipped entirely.
	nx, ny, ok := gamemath.UnitVector(aObj.CenterX(), aObj.CenterY(), bObj.CenterX(), bObj.CenterY())
	if !ok {
		return
	}

	aObj.SetCenter(aObj.CenterX()-nx*overlap/2, aObj.CenterY()-ny*overlap/2)
	bObj.SetCenter(bObj.CenterX()+nx*overlap/2, bObj.CenterY()+ny*overlap/2)
	aObj.Update()
	bObj.Update()

	aPhys := components.Physics.Get(a)
	bPhys := components.Physics.Get(b)

	closing := -((bPhys.VelX-aPhys.VelX)*nx + (bPhys.VelY-aPhys.VelY)*ny)
	if closing < 0 {
		closing = 0
	}

	// Independent randomness per side keeps perfectly mirrored fighters
	// from sticking together.
	pushA := (closing*cfg.Collision.Bounce + cfg.Collision.Kick) * (0.5 + arena.Rng.Float64())
	pushB := (closing*cfg.Collision.Bounce + cfg.Collision.Kick) * (0.5 + arena.Rng.Float64())

	aPhys.VelX -= nx * pushA
	aPhys.VelY -= ny * pushA
	bPhys.VelX += nx * pushB
	bPhys.VelY += ny * pushB
}

// resolveWalls pushes a fighter fully out of any wall it overlaps on the
// same tick and reflects the velocity component moving into the wall,
// scaled down by the wall damping. A fighter already moving away keeps its
// velocity untouched.
func resolveWalls(f *donburi.Entry) {
	obj := components.Object.Get(f)
	fighter := components.Fighter.Get(f)
	physics := components.Physics.Get(f)

	check := obj.Check(0, 0, tags.ResolvWall)
	if check == nil {
		return
	}

	for _, wallObj := range check.ObjectsByTags(tags.ResolvWall) {
		wallRadius := wallObj.W / 2
		wx := wallObj.X + wallRadius
		wy := wallObj.Y + wallRadius

		overlap, overlapping := gamemath.CirclesOverlap(
			obj.CenterX(), obj.CenterY(), fighter.Radius,
			wx, wy, wallRadius,
		)
		if !overlapping {
			continue
		}

		nx, ny, ok := gamemath.UnitVector(wx, wy, obj.CenterX(), obj.CenterY())
		if !ok {
			continue
		}

		obj.SetCenter(obj.CenterX()+nx*overlap, obj.CenterY()+ny*overlap)
		obj.Update()

		into := physics.VelX*nx + physics.VelY*ny
		if into < 0 {
			physics.VelX -= nx * into * (1 + cfg.Arena.WallDamping)
			physics.VelY -= ny * into * (1 + cfg.Arena.WallDamping)
		}
	}
}
