package systems

import (
	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles pause toggle and menu navigation.
// It runs once per frame, after UpdateInput, outside the fixed-step ticks.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)
	StepPause(pause, func(id cfg.ActionID) bool {
		return GetAction(input, id).JustPressed
	})
}

// StepPause applies one frame of pause input. pressed reports whether an
// action was pressed this frame.
func StepPause(pause *components.PauseData, pressed func(cfg.ActionID) bool) {
	// Toggle pause on ESC, P or Start
	if pressed(cfg.ActionPause) {
		pause.IsPaused = !pause.IsPaused
		pause.SelectedOption = components.MenuResume
		return
	}

	// Only process menu input while paused
	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuLeaveMatch) + 1
	if pressed(cfg.ActionMenuUp) {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if pressed(cfg.ActionMenuDown) {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
	}

	if pressed(cfg.ActionMenuSelect) {
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuLeaveMatch:
			pause.Leave = true
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	// Calculate menu positioning
	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Bold.Get()

	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		// Determine color based on selection
		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		x := int((width - float64(text.BoundString(fontFace, option).Dx())) / 2)
		text.Draw(screen, option, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Resume"
	hintFont := fonts.Small.Get()
	hintX := int((width - float64(text.BoundString(hintFont, hint).Dx())) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
