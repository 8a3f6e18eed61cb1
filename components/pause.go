package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuLeaveMatch
)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	Leave          bool // set when the players chose to return to the start menu
}

var Pause = donburi.NewComponentType[PauseData]()
