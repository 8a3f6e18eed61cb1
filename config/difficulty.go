package config

import "fmt"

// DifficultyLevel selects one of the fixed computer-opponent presets.
type DifficultyLevel int

const (
	DifficultyEasy DifficultyLevel = iota
	DifficultyMedium
	DifficultyHard
)

// DifficultyCount is the number of presets.
const DifficultyCount = 3

// Difficulty holds tuning values for computer-controlled teams at a specific level.
type Difficulty struct {
	GoalieEnabled     bool
	SecondLeadEnabled bool
	SpeedBoost        float64 // Added to lead speed when chasing a human owner
	HoldoffTimer      int     // Ticks after acquisition before a computer owner may shoot
}

// Difficulties holds the three presets.
var Difficulties = [DifficultyCount]Difficulty{
	DifficultyEasy: {
		GoalieEnabled:     false,
		SecondLeadEnabled: false,
		SpeedBoost:        0.0,
		HoldoffTimer:      120,
	},
	DifficultyMedium: {
		GoalieEnabled:     false,
		SecondLeadEnabled: true,
		SpeedBoost:        0.1,
		HoldoffTimer:      90,
	},
	DifficultyHard: {
		GoalieEnabled:     true,
		SecondLeadEnabled: true,
		SpeedBoost:        0.2,
		HoldoffTimer:      60,
	},
}

// Preset returns the difficulty settings for a level, falling back to medium.
func (l DifficultyLevel) Preset() Difficulty {
	if l < 0 || int(l) >= DifficultyCount {
		return Difficulties[DifficultyMedium]
	}
	return Difficulties[l]
}

func (l DifficultyLevel) String() string {
	switch l {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int(l))
}

// ParseDifficulty maps a preset name to its level.
func ParseDifficulty(name string) (DifficultyLevel, error) {
	for l := DifficultyEasy; l <= DifficultyHard; l++ {
		if l.String() == name {
			return l, nil
		}
	}
	return DifficultyMedium, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", name)
}
