package systems

import (
	"github.com/automoto/substitute-soccer/archetypes"
	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input for the menu, merging every keyboard key and
// gamepad bound to a menu action.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		_, _, up, down := analogDirections(gpID)
		input.Current[cfg.ActionMenuUp] = input.Current[cfg.ActionMenuUp] || up
		input.Current[cfg.ActionMenuDown] = input.Current[cfg.ActionMenuDown] || down
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return actionState(input.Current[id], input.Previous[id])
}

func actionState(curr, prev bool) components.ActionState {
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// BindTeamInput attaches a keyboard scheme and an optional gamepad to a team.
func BindTeamInput(w donburi.World, team int, scheme cfg.ControlSchemeID, gamepad *ebiten.GamepadID) {
	for entry := range components.TeamInfo.Iter(w) {
		if components.TeamInfo.Get(entry).Team != team {
			continue
		}
		if !entry.HasComponent(components.InputBinding) {
			entry.AddComponent(components.InputBinding)
		}
		components.InputBinding.SetValue(entry, components.InputBindingData{
			Scheme:  scheme,
			Gamepad: gamepad,
		})
	}
}

// PollTeamInputs reads every bound team's device once and returns the held
// direction and the shoot press edge per team. Unbound teams read as idle.
func PollTeamInputs(w donburi.World) [2]components.ControlsData {
	var out [2]components.ControlsData
	for entry := range components.InputBinding.Iter(w) {
		team := components.TeamInfo.Get(entry).Team
		binding := components.InputBinding.Get(entry)
		pollBinding(binding)
		out[team] = controlsFromBinding(binding)
	}
	return out
}

func pollBinding(binding *components.InputBindingData) {
	binding.Previous = binding.Current
	binding.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range cfg.ControlSchemeBindings[binding.Scheme] {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				binding.Current[actionID] = true
			}
		}
	}

	if binding.Gamepad == nil || !ebiten.IsStandardGamepadLayoutAvailable(*binding.Gamepad) {
		return
	}
	gpID := *binding.Gamepad
	for _, actionID := range []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight, cfg.ActionMoveUp, cfg.ActionMoveDown, cfg.ActionShoot} {
		for _, btn := range cfg.Input.Bindings[actionID].StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				binding.Current[actionID] = true
			}
		}
	}
	left, right, up, down := analogDirections(gpID)
	binding.Current[cfg.ActionMoveLeft] = binding.Current[cfg.ActionMoveLeft] || left
	binding.Current[cfg.ActionMoveRight] = binding.Current[cfg.ActionMoveRight] || right
	binding.Current[cfg.ActionMoveUp] = binding.Current[cfg.ActionMoveUp] || up
	binding.Current[cfg.ActionMoveDown] = binding.Current[cfg.ActionMoveDown] || down
}

// controlsFromBinding turns held directions into a vector and the shoot
// button into an edge-triggered flag.
func controlsFromBinding(binding *components.InputBindingData) components.ControlsData {
	var move math.Vec2
	if binding.Current[cfg.ActionMoveLeft] {
		move.X--
	}
	if binding.Current[cfg.ActionMoveRight] {
		move.X++
	}
	if binding.Current[cfg.ActionMoveUp] {
		move.Y--
	}
	if binding.Current[cfg.ActionMoveDown] {
		move.Y++
	}
	shoot := actionState(binding.Current[cfg.ActionShoot], binding.Previous[cfg.ActionShoot])
	return components.ControlsData{Move: move, Shoot: shoot.JustPressed}
}

// analogDirections reads the left stick of a gamepad against the deadzone.
func analogDirections(gpID ebiten.GamepadID) (left, right, up, down bool) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}
	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
	return horizontal < -deadzone, horizontal > deadzone, vertical < -deadzone, vertical > deadzone
}
