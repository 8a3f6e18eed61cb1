package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Team is 0 or 1. Team 0 attacks toward y=0.
var Team = donburi.NewComponentType[int]()

// Slot is the spawn index of a player (0..13). Systems iterate players in
// slot order and break distance ties on it.
var Slot = donburi.NewComponentType[int]()

// Timer counts ticks until the entity may acquire the ball again. Never negative.
var Timer = donburi.NewComponentType[int]()

// Peer links a player to its mirrored opponent. Set once at spawn.
var Peer = donburi.NewComponentType[donburi.Entity]()

// TargetData is this tick's movement goal, written by the target planner.
type TargetData struct {
	Position math.Vec2
	Speed    float64
}

var Target = donburi.NewComponentType[TargetData]()
