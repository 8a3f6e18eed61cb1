package systems

import (
	"fmt"

	"github.com/automoto/substitute-soccer/archetypes"
	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// MenuChoice is what the start menu hands to the match.
type MenuChoice struct {
	NumPlayers int
	Difficulty cfg.DifficultyLevel
}

const maxHumanTeams = 2

// NewUpdateMenu creates an UpdateMenu system that calls start once both
// pages have been confirmed.
func NewUpdateMenu(start func(MenuChoice)) ecs.System {
	primed := false
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		if menu.Done || menu.Quit {
			return
		}

		// Keys still held from the previous scene read as fresh presses on
		// the first frame.
		input := getOrCreateInput(e)
		if !primed {
			primed = true
			return
		}
		StepMenu(menu, func(id cfg.ActionID) bool {
			return GetAction(input, id).JustPressed
		})

		if menu.Done {
			choice := MenuChoice{NumPlayers: menu.NumPlayers, Difficulty: menu.Difficulty}
			_ = SaveMenuChoice(choice)
			start(choice)
		}
	}
}

// StepMenu applies one frame of menu navigation. pressed reports whether an
// action was pressed this frame.
func StepMenu(menu *components.MenuData, pressed func(cfg.ActionID) bool) {
	numOptions := len(menuOptions(menu.Stage))

	// Navigate menu with wrap-around
	if pressed(cfg.ActionMenuUp) {
		menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
	}
	if pressed(cfg.ActionMenuDown) {
		menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
	}

	if pressed(cfg.ActionMenuSelect) {
		switch menu.Stage {
		case components.MenuStagePlayers:
			menu.NumPlayers = menu.SelectedIndex
			if menu.NumPlayers == maxHumanTeams {
				// No computer team, so difficulty does not apply.
				menu.Done = true
				return
			}
			menu.Stage = components.MenuStageDifficulty
			menu.SelectedIndex = int(menu.Difficulty)
		case components.MenuStageDifficulty:
			menu.Difficulty = cfg.DifficultyLevel(menu.SelectedIndex)
			menu.Done = true
		}
		return
	}

	if pressed(cfg.ActionMenuBack) {
		switch menu.Stage {
		case components.MenuStagePlayers:
			menu.Quit = true
		case components.MenuStageDifficulty:
			menu.Stage = components.MenuStagePlayers
			menu.SelectedIndex = menu.NumPlayers
		}
	}
}

func menuOptions(stage components.MenuStage) []string {
	if stage == components.MenuStageDifficulty {
		opts := make([]string, cfg.DifficultyCount)
		for l := cfg.DifficultyEasy; int(l) < cfg.DifficultyCount; l++ {
			opts[l] = l.String()
		}
		return opts
	}
	opts := make([]string, maxHumanTeams+1)
	for n := range opts {
		switch n {
		case 0:
			opts[n] = "Watch"
		case 1:
			opts[n] = "1 player"
		default:
			opts[n] = fmt.Sprintf("%d players", n)
		}
	}
	return opts
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	// Draw title
	titleFont := fonts.Title.Get()
	title := "SUBSTITUTE SOCCER"
	titleWidth := text.BoundString(titleFont, title).Dx()
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	heading := "How many players?"
	if menu.Stage == components.MenuStageDifficulty {
		heading = "Difficulty"
	}
	headingX := int((width - float64(text.BoundString(menuFont, heading).Dx())) / 2)
	text.Draw(screen, heading, menuFont, headingX, int(cfg.Menu.MenuStartY)-16, cfg.White)

	for i, label := range menuOptions(menu.Stage) {
		y := cfg.Menu.MenuStartY + float64(i+1)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		// Determine color based on selection
		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		x := int((width - float64(text.BoundString(menuFont, label).Dx())) / 2)
		text.Draw(screen, label, menuFont, x, int(y), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Back"
	hintFont := fonts.Small.Get()
	hintX := int((width - float64(text.BoundString(hintFont, hint).Dx())) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Menu.TextColorNormal)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed.
// A new menu starts from the last saved choice.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if entry, ok := components.Menu.First(e.World); ok {
		return components.Menu.Get(entry)
	}

	choice := MenuChoice{NumPlayers: 1, Difficulty: cfg.DifficultyMedium}
	if saved, err := LoadMenuChoice(); err == nil && saved != nil {
		choice = *saved
	}

	entry := archetypes.Menu.Spawn(e)
	components.Menu.SetValue(entry, components.MenuData{
		Stage:         components.MenuStagePlayers,
		SelectedIndex: choice.NumPlayers,
		NumPlayers:    choice.NumPlayers,
		Difficulty:    choice.Difficulty,
	})
	return components.Menu.Get(entry)
}
