package gamemath

import (
	stdmath "math"

	"github.com/automoto/substitute-soccer/config"
	"github.com/yohamta/donburi/features/math"
)

// Bounds is a closed interval on one axis.
type Bounds struct {
	Min, Max float64
}

// PitchBoundsX returns the touchline interval.
func PitchBoundsX() Bounds {
	f := config.Field
	return Bounds{f.HalfLevelW() - f.HalfPitchW, f.HalfLevelW() + f.HalfPitchW}
}

// PitchBoundsY returns the goal line interval.
func PitchBoundsY() Bounds {
	f := config.Field
	return Bounds{f.HalfLevelH() - f.HalfPitchH, f.HalfLevelH() + f.HalfPitchH}
}

// GoalBoundsX returns the goal mouth interval between the posts.
func GoalBoundsX() Bounds {
	f := config.Field
	return Bounds{f.HalfLevelW() - f.HalfGoalW(), f.HalfLevelW() + f.HalfGoalW()}
}

// GoalBoundsY returns the interval reaching the back of both goals.
func GoalBoundsY() Bounds {
	f := config.Field
	return Bounds{f.HalfLevelH() - f.HalfPitchH - f.GoalDepth, f.HalfLevelH() + f.HalfPitchH + f.GoalDepth}
}

// BallBounds picks the bounce intervals for a free ball. Once the ball is past
// a goal line it is confined between the posts; once it is between the posts
// it may travel into the goal.
func BallBounds(pos math.Vec2) (x, y Bounds) {
	f := config.Field
	x = PitchBoundsX()
	if stdmath.Abs(pos.Y-f.HalfLevelH()) > f.HalfPitchH {
		x = GoalBoundsX()
	}
	y = PitchBoundsY()
	if stdmath.Abs(pos.X-f.HalfLevelW()) < f.HalfGoalW() {
		y = GoalBoundsY()
	}
	return x, y
}

// AllowMovement reports whether a player may stand at (x, y): inside the
// level, and never behind a goal line within the goal-mouth band.
func AllowMovement(x, y float64) bool {
	f := config.Field
	dx := stdmath.Abs(x - f.HalfLevelW())
	dy := stdmath.Abs(y - f.HalfLevelH())
	switch {
	case dx > f.HalfLevelW():
		return false
	case dx < f.HalfGoalW()+20:
		return dy < f.HalfPitchH
	default:
		return dy <= f.HalfLevelH()
	}
}

// OnPitch reports whether a dribbled ball may occupy (x, y): the pitch
// rectangle or either goal interior.
func OnPitch(x, y float64) bool {
	px, py := PitchBoundsX(), PitchBoundsY()
	if inHalfOpen(x, px) && inHalfOpen(y, py) {
		return true
	}
	gx, gy := GoalBoundsX(), GoalBoundsY()
	if !inHalfOpen(x, gx) {
		return false
	}
	return inHalfOpen(y, Bounds{gy.Min, py.Min}) || inHalfOpen(y, Bounds{py.Max, gy.Max})
}

func inHalfOpen(v float64, b Bounds) bool {
	return v >= b.Min && v < b.Max
}
