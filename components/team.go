package components

import (
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TeamInfoData is per-team state that survives resets.
type TeamInfoData struct {
	Team   int
	Human  bool
	Score  int
	Active donburi.Entity
}

var TeamInfo = donburi.NewComponentType[TeamInfoData]()

// ControlsData holds the two signals a team's controller produces each tick:
// a held direction and an edge-triggered shoot press.
type ControlsData struct {
	Move  math.Vec2
	Shoot bool
}

var Controls = donburi.NewComponentType[ControlsData]()

// InputBindingData binds a human team to a keyboard scheme and an optional
// gamepad, and keeps the pressed state of the last two frames.
type InputBindingData struct {
	Scheme   cfg.ControlSchemeID
	Gamepad  *ebiten.GamepadID
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var InputBinding = donburi.NewComponentType[InputBindingData]()
