package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is the current location in field space.
var Position = donburi.NewComponentType[math.Vec2]()

// Home is the idle stance of a player, fixed at spawn.
var Home = donburi.NewComponentType[math.Vec2]()
