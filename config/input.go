package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionShoot
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// ControlSchemeID selects a keyboard layout for one team.
type ControlSchemeID int

const (
	ControlSchemeArrows ControlSchemeID = iota // Arrows + Space
	ControlSchemeWASD                          // WASD + Left Shift
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Gamepad bindings for teams and menu bindings merged from every device.
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

// ControlSchemeBindings maps each scheme to its per-team gameplay keys.
var ControlSchemeBindings = map[ControlSchemeID]map[ActionID][]ebiten.Key{
	ControlSchemeArrows: {
		ActionMoveLeft:  {ebiten.KeyLeft},
		ActionMoveRight: {ebiten.KeyRight},
		ActionMoveUp:    {ebiten.KeyUp},
		ActionMoveDown:  {ebiten.KeyDown},
		ActionShoot:     {ebiten.KeySpace},
	},
	ControlSchemeWASD: {
		ActionMoveLeft:  {ebiten.KeyA},
		ActionMoveRight: {ebiten.KeyD},
		ActionMoveUp:    {ebiten.KeyW},
		ActionMoveDown:  {ebiten.KeyS},
		ActionShoot:     {ebiten.KeyShiftLeft},
	},
}

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMoveUp: {
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveDown: {
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionShoot: {
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
		},
	}
}
