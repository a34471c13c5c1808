package gamemath

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Fatalf("Distance(0,0,3,4) = %f, want 5", d)
	}
	if d := Distance(2, 2, 2, 2); d != 0 {
		t.Fatalf("Distance of coincident points = %f, want 0", d)
	}
}

func TestUnitVector(t *testing.T) {
	nx, ny, ok := UnitVector(0, 0, 10, 0)
	if !ok || nx != 1 || ny != 0 {
		t.Fatalf("UnitVector(0,0,10,0) = (%f,%f,%v), want (1,0,true)", nx, ny, ok)
	}

	nx, ny, ok = UnitVector(0, 0, 3, 4)
	if !ok || math.Abs(nx-0.6) > 1e-9 || math.Abs(ny-0.8) > 1e-9 {
		t.Fatalf("UnitVector(0,0,3,4) = (%f,%f,%v), want (0.6,0.8,true)", nx, ny, ok)
	}

	if _, _, ok := UnitVector(5, 5, 5, 5); ok {
		t.Fatal("UnitVector of coincident points reported a direction")
	}
}

func TestPointInRotatedSquareAxisAligned(t *testing.T) {
	// At zero rotation the test must agree with a plain AABB check.
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 0, 0, true},
		{"inside corner", 9, 9, true},
		{"on edge", 10, 0, true},
		{"outside x", 10.01, 0, false},
		{"outside corner", 11, 11, false},
	}
	for _, tt := range tests {
		if got := PointInRotatedSquare(tt.px, tt.py, 0, 0, 10, 0); got != tt.want {
			t.Errorf("%s: PointInRotatedSquare(%f,%f) = %v, want %v", tt.name, tt.px, tt.py, got, tt.want)
		}
	}
}

func TestPointInRotatedSquareRotated(t *testing.T) {
	// Rotating the square 45 degrees turns it into a diamond in world
	// coordinates: the old corner direction now reaches sqrt(2)*halfExtent,
	// while the old edge midpoint direction shrinks.
	angle := math.Pi / 4

	// Along the rotated corner axis, a point 13 units out is inside
	// (corner is at ~14.14).
	if !PointInRotatedSquare(13, 0, 0, 0, 10, angle) {
		t.Fatal("point along the rotated corner axis should be inside")
	}
	// A point that the axis-aligned square would contain is now outside.
	if PointInRotatedSquare(9, 9, 0, 0, 10, angle) {
		t.Fatal("old corner region should be outside the rotated square")
	}
}

func TestCirclesOverlap(t *testing.T) {
	overlap, ok := CirclesOverlap(0, 0, 30, 40, 0, 30)
	if !ok || overlap != 20 {
		t.Fatalf("CirclesOverlap = (%f,%v), want (20,true)", overlap, ok)
	}

	// Exactly touching circles do not count as overlapping.
	if _, ok := CirclesOverlap(0, 0, 30, 60, 0, 30); ok {
		t.Fatal("touching circles reported as overlapping")
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(-5, 0, 100); v != 0 {
		t.Fatalf("Clamp(-5,0,100) = %f, want 0", v)
	}
	if v := Clamp(150, 0, 100); v != 100 {
		t.Fatalf("Clamp(150,0,100) = %f, want 100", v)
	}
	if v := Clamp(42, 0, 100); v != 42 {
		t.Fatalf("Clamp(42,0,100) = %f, want 42", v)
	}
}
