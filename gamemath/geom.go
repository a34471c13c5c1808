package gamemath

import "math"

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// UnitVector returns the normalized direction from (x1,y1) to (x2,y2).
// ok is false when the points coincide and no direction exists.
func UnitVector(x1, y1, x2, y2 float64) (nx, ny float64, ok bool) {
	dx := x2 - x1
	dy := y2 - y1
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, false
	}
	return dx / dist, dy / dist, true
}

// PointInRotatedSquare reports whether point (px,py) lies inside a square
// centered at (cx,cy) with the given half-extent, rotated by angle radians.
// The point is transformed into the square's local frame first.
func PointInRotatedSquare(px, py, cx, cy, halfExtent, angle float64) bool {
	dx := px - cx
	dy := py - cy
	cos := math.Cos(-angle)
	sin := math.Sin(-angle)
	localX := dx*cos - dy*sin
	localY := dx*sin + dy*cos
	return math.Abs(localX) <= halfExtent && math.Abs(localY) <= halfExtent
}

// CirclesOverlap reports whether two circles overlap and by how much.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) (overlap float64, ok bool) {
	dist := Distance(x1, y1, x2, y2)
	if dist >= r1+r2 {
		return 0, false
	}
	return r1 + r2 - dist, true
}

// Clamp constrains a value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
