package systems

import (
	"encoding/json"

	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// SavedMenu is the last start menu choice stored on disk
type SavedMenu struct {
	NumPlayers int    `json:"numPlayers"`
	Difficulty string `json:"difficulty"`
}

const menuItem = "menu"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "substitutesoccer",
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadMenuChoice loads the last menu choice. It returns nil without an error
// when persistence is unavailable or nothing was saved yet.
func LoadMenuChoice() (*MenuChoice, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(menuItem)
	if err != nil {
		log.Warn("could not load menu choice", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decodeMenuChoice(data)
}

func decodeMenuChoice(data []byte) (*MenuChoice, error) {
	var saved SavedMenu
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn("could not parse saved menu choice", "err", err)
		return nil, err
	}

	difficulty, err := cfg.ParseDifficulty(saved.Difficulty)
	if err != nil {
		return nil, err
	}
	numPlayers := saved.NumPlayers
	if numPlayers < 0 || numPlayers > maxHumanTeams {
		numPlayers = 1
	}
	return &MenuChoice{NumPlayers: numPlayers, Difficulty: difficulty}, nil
}

func encodeMenuChoice(c MenuChoice) ([]byte, error) {
	return json.Marshal(SavedMenu{NumPlayers: c.NumPlayers, Difficulty: c.Difficulty.String()})
}

// SaveMenuChoice stores the menu choice for the next launch
func SaveMenuChoice(c MenuChoice) error {
	if gdataManager == nil {
		return nil
	}

	data, err := encodeMenuChoice(c)
	if err != nil {
		log.Warn("could not serialize menu choice", "err", err)
		return err
	}

	if err := gdataManager.SaveItem(menuItem, data); err != nil {
		log.Warn("could not save menu choice", "err", err)
		return err
	}
	return nil
}
