package gamemath

import (
	stdmath "math"

	"github.com/automoto/substitute-soccer/config"
)

// BounceStep advances one axis of free flight. A step that would leave
// [lo, hi] is reverted and the velocity reversed. Drag applies either way.
func BounceStep(pos, vel, lo, hi, drag float64) (float64, float64) {
	pos += vel
	if pos < lo || pos > hi {
		pos -= vel
		vel = -vel
	}
	return pos, vel * drag
}

// Steps returns the number of ticks a ball kicked at full strength needs to
// cover distance under drag alone. Distances at or beyond the stopping
// distance report the fixed cap.
func Steps(distance float64) int {
	b := config.Ball
	if distance >= b.MaxTravel {
		return b.MaxTravelSteps
	}
	if distance <= 0 {
		return 0
	}
	remaining := 1 - distance*(1-b.Drag)/b.KickStrength
	return int(stdmath.Ceil(stdmath.Log(remaining) / stdmath.Log(b.Drag)))
}
