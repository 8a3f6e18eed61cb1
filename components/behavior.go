package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type MarkKind int

const (
	MarkPlayer MarkKind = iota
	MarkGoal
)

// MarkData is a defender's point of attention, recomputed every tick.
type MarkData struct {
	Kind   MarkKind
	Player donburi.Entity // valid when Kind == MarkPlayer
	Goal   math.Vec2      // valid when Kind == MarkGoal
}

var Mark = donburi.NewComponentType[MarkData]()

// NoRank marks a player outside the lead ranking.
const NoRank = -1

// LeadData is a defender's interception assignment, recomputed every tick.
type LeadData struct {
	Distance    float64
	HasDistance bool
	Rank        int
}

// Clear resets the lead to "none".
func (l *LeadData) Clear() {
	*l = LeadData{Rank: NoRank}
}

var Lead = donburi.NewComponentType[LeadData]()
