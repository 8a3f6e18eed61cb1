package gamemath

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Facing octants run clockwise from 0 (up the screen, toward y=0).
const Octants = 8

// facingStep maps (desired - current) mod 8 to the turn applied this tick.
// Differences up to 4 turn clockwise, the rest anticlockwise.
var facingStep = [Octants]int{0, 1, 1, 1, 1, 7, 7, 7}

// VecToAngle discretises a direction into one of the eight octants.
func VecToAngle(v math.Vec2) int {
	return int(4*stdmath.Atan2(v.X, -v.Y)/stdmath.Pi+8.5) % Octants
}

// AngleToVec returns the unit vector for an octant.
func AngleToVec(angle int) math.Vec2 {
	a := float64(angle) * stdmath.Pi / 4
	return math.Vec2{X: stdmath.Sin(a), Y: -stdmath.Cos(a)}
}

// StepFacing turns current at most one octant toward desired.
func StepFacing(current, desired int) int {
	diff := ((desired-current)%Octants + Octants) % Octants
	return (current + facingStep[diff]) % Octants
}
