package gamemath

import (
	stdmath "math"
	"testing"

	"github.com/yohamta/donburi/features/math"
)

const eps = 1e-9

func near(a, b float64) bool {
	return stdmath.Abs(a-b) < eps
}

func TestBounceStep(t *testing.T) {
	pos, vel := BounceStep(500, 5, 0, 504, 0.98)
	if !near(pos, 500) || !near(vel, -4.9) {
		t.Fatalf("first tick = (%v, %v), want (500, -4.9)", pos, vel)
	}
	pos, vel = BounceStep(pos, vel, 0, 504, 0.98)
	if !near(pos, 495.1) || !near(vel, -4.802) {
		t.Fatalf("second tick = (%v, %v), want (495.1, -4.802)", pos, vel)
	}
}

func TestBounceStepLowerBound(t *testing.T) {
	pos, vel := BounceStep(2, -3, 0, 100, 1)
	if pos != 2 || vel != 3 {
		t.Fatalf("BounceStep() = (%v, %v), want (2, 3)", pos, vel)
	}
}

func TestStepsZero(t *testing.T) {
	if got := Steps(0); got != 0 {
		t.Fatalf("Steps(0) = %d, want 0", got)
	}
}

func TestStepsMonotonic(t *testing.T) {
	prev := 0
	for d := 0.0; d < 574; d += 0.5 {
		got := Steps(d)
		if got < prev {
			t.Fatalf("Steps(%v) = %d, less than previous %d", d, got, prev)
		}
		prev = got
	}
}

func TestStepsCap(t *testing.T) {
	for _, d := range []float64{574, 575, 1000, 1e6} {
		if got := Steps(d); got != 190 {
			t.Errorf("Steps(%v) = %d, want 190", d, got)
		}
	}
}

func TestStepsMatchesSimulation(t *testing.T) {
	// A kicked ball must have covered at least d after Steps(d) ticks.
	for _, d := range []float64{10, 100, 250, 400} {
		n := Steps(d)
		travelled, vel := 0.0, 11.5
		for i := 0; i < n; i++ {
			travelled += vel
			vel *= 0.98
		}
		if travelled+1e-6 < d {
			t.Errorf("after Steps(%v)=%d ticks ball travelled %v", d, n, travelled)
		}
	}
}

func TestAllowMovement(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"level centre", 500, 700, true},
		{"goal back inside mouth band", 500, 0, false},
		{"top edge outside mouth band", 200, 0, true},
		{"bottom goal back", 500, 1400, false},
		{"left of level", -1, 700, false},
		{"right of level", 1001, 700, false},
		{"just inside pitch height in band", 500, 79, true},
		{"behind goal line in band", 500, 77, false},
		{"band edge plus margin", 500 - 93 - 21, 10, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AllowMovement(tc.x, tc.y); got != tc.want {
				t.Errorf("AllowMovement(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestOnPitch(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre spot", 500, 700, true},
		{"top goal interior", 500, 60, true},
		{"beside top goal", 300, 60, false},
		{"bottom goal interior", 500, 1330, true},
		{"behind bottom goal", 500, 1342, false},
		{"outside touchline", 57, 700, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OnPitch(tc.x, tc.y); got != tc.want {
				t.Errorf("OnPitch(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestBallBounds(t *testing.T) {
	x, y := BallBounds(math.Vec2{X: 500, Y: 700})
	if x != PitchBoundsX() || y != GoalBoundsY() {
		t.Errorf("centre bounds = %v %v", x, y)
	}
	x, y = BallBounds(math.Vec2{X: 200, Y: 700})
	if x != PitchBoundsX() || y != PitchBoundsY() {
		t.Errorf("wing bounds = %v %v", x, y)
	}
	x, _ = BallBounds(math.Vec2{X: 500, Y: 60})
	if x != GoalBoundsX() {
		t.Errorf("in-goal x bounds = %v, want %v", x, GoalBoundsX())
	}
}

func TestVecToAngleRoundTrip(t *testing.T) {
	for a := 0; a < Octants; a++ {
		if got := VecToAngle(AngleToVec(a)); got != a {
			t.Errorf("VecToAngle(AngleToVec(%d)) = %d", a, got)
		}
	}
	if got := VecToAngle(math.Vec2{X: 0, Y: -1}); got != 0 {
		t.Errorf("up = %d, want 0", got)
	}
	if got := VecToAngle(math.Vec2{X: 1, Y: 0}); got != 2 {
		t.Errorf("right = %d, want 2", got)
	}
	if got := VecToAngle(math.Vec2{X: 0, Y: 1}); got != 4 {
		t.Errorf("down = %d, want 4", got)
	}
}

func TestStepFacing(t *testing.T) {
	tests := []struct {
		current, desired, want int
	}{
		{0, 0, 0},
		{0, 2, 1},
		{0, 4, 1},
		{0, 5, 7},
		{0, 7, 7},
		{6, 1, 7},
		{1, 6, 0},
		{3, 3, 3},
	}
	for _, tc := range tests {
		if got := StepFacing(tc.current, tc.desired); got != tc.want {
			t.Errorf("StepFacing(%d, %d) = %d, want %d", tc.current, tc.desired, got, tc.want)
		}
	}
}

func TestSafeNormalise(t *testing.T) {
	tests := []struct {
		name    string
		in      math.Vec2
		wantDir math.Vec2
		wantLen float64
	}{
		{"zero", math.Vec2{}, math.Vec2{}, 0},
		{"axis", math.Vec2{X: 0, Y: -7}, math.Vec2{X: 0, Y: -1}, 7},
		{"diagonal", math.Vec2{X: 30, Y: 40}, math.Vec2{X: 0.6, Y: 0.8}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, l := SafeNormalise(tt.in)
			if !near(l, tt.wantLen) || !near(dir.X, tt.wantDir.X) || !near(dir.Y, tt.wantDir.Y) {
				t.Errorf("SafeNormalise(%v) = %v, %v, want %v, %v", tt.in, dir, l, tt.wantDir, tt.wantLen)
			}
		})
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(math.Vec2{X: 100, Y: 200}, math.Vec2{X: 300, Y: -40})
	if !near(got.X, 200) || !near(got.Y, 80) {
		t.Fatalf("Midpoint = %v, want (200, 80)", got)
	}
}

func TestClampLength(t *testing.T) {
	v := ClampLength(math.Vec2{X: 30, Y: 40}, 5)
	if !near(v.X, 3) || !near(v.Y, 4) {
		t.Fatalf("ClampLength = %v, want (3, 4)", v)
	}
	v = ClampLength(math.Vec2{X: 1, Y: 1}, 5)
	if v.X != 1 || v.Y != 1 {
		t.Fatalf("short vector changed: %v", v)
	}
}
