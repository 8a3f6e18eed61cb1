// Package leveldata parses the pitch layout from a Tiled map. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

// Layout is the pitch geometry and the template start points for team 0.
type Layout struct {
	Width  float64
	Height float64
	Pitch  Rect
	Goals  []Rect
	Starts []StartPoint
}

// Rect is an axis-aligned rectangle in field space.
type Rect struct {
	X, Y, W, H float64
}

// StartPoint is a template spawn location. Team 1 uses the mirrored point.
type StartPoint struct {
	X, Y  float64
	Index int
}
