package components

import (
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/yohamta/donburi"
)

// MenuStage is the page the start menu is showing.
type MenuStage int

const (
	MenuStagePlayers MenuStage = iota
	MenuStageDifficulty
)

// MenuData stores the current state of the start menu
type MenuData struct {
	Stage         MenuStage
	SelectedIndex int
	NumPlayers    int // 0, 1 or 2 human teams
	Difficulty    cfg.DifficultyLevel
	Done          bool
	Quit          bool
}

var Menu = donburi.NewComponentType[MenuData]()
