package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BallState is either Free or Dribbled. A ball has a velocity exactly when
// it has no owner.
type BallState interface {
	ballState()
}

// Free is a ball in flight.
type Free struct {
	Velocity math.Vec2
}

// Dribbled is a ball eased along behind its owner.
type Dribbled struct {
	Owner donburi.Entity
}

func (Free) ballState()     {}
func (Dribbled) ballState() {}

type BallData struct {
	State BallState
}

// Owner returns the dribbling player, if any.
func (b *BallData) Owner() (donburi.Entity, bool) {
	if d, ok := b.State.(Dribbled); ok {
		return d.Owner, true
	}
	return donburi.Null, false
}

// Velocity returns the free-flight velocity, if the ball is free.
func (b *BallData) Velocity() (math.Vec2, bool) {
	if f, ok := b.State.(Free); ok {
		return f.Velocity, true
	}
	return math.Vec2{}, false
}

var Ball = donburi.NewComponentType[BallData]()
