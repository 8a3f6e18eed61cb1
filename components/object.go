package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyData is the broad-phase collision object of a player or the ball.
type BodyData struct {
	*resolv.Object
}

var Body = donburi.NewComponentType[BodyData]()

// Space is the singleton broad-phase grid.
var Space = donburi.NewComponentType[resolv.Space]()
