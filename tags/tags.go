package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Ball   = donburi.NewTag().SetName("Ball")
)

// Resolv tags for the broad phase
const (
	ResolvPlayer = "player"
	ResolvBall   = "ball"
)
