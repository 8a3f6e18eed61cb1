package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData drives the scoreboard and the goal banner animation.
type HUDData struct {
	Banner     *gween.Tween // nil when no banner is showing
	BannerX    float32
	BannerTeam int
	LastScores [2]int
}

var HUD = donburi.NewComponentType[HUDData]()
