package components

import "github.com/yohamta/donburi"

// AnimationData is the discrete facing and walk cycle of a player.
type AnimationData struct {
	Facing int     // octant 0..7, clockwise from up
	Frame  float64 // walk cycle position in [0, WalkCycle)
}

// FrameIndex returns the sprite frame (0..7) for the current walk position.
func (a *AnimationData) FrameIndex(cycle float64) int {
	if cycle <= 0 {
		return 0
	}
	return int(a.Frame/(cycle/8)) % 8
}

var Animation = donburi.NewComponentType[AnimationData]()
