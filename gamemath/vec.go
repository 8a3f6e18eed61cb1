// Package gamemath holds the pure geometry and physics helpers used by the
// simulation systems. Vectors are donburi Vec2 values in field space.
package gamemath

import "github.com/yohamta/donburi/features/math"

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b math.Vec2) math.Vec2 {
	return a.Add(b).MulScalar(0.5)
}

// SafeNormalise returns the unit vector and length of v. A zero vector
// yields (0,0) and length 0 instead of NaNs.
func SafeNormalise(v math.Vec2) (math.Vec2, float64) {
	l := v.Magnitude()
	if l == 0 {
		return math.Vec2{}, 0
	}
	return v.MulScalar(1 / l), l
}

// ClampLength shortens v to at most max, keeping its direction.
func ClampLength(v math.Vec2, max float64) math.Vec2 {
	dir, l := SafeNormalise(v)
	if l <= max {
		return v
	}
	return dir.MulScalar(max)
}

// Clamp restricts a float64 value to be within [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
