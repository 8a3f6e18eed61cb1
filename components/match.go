package components

import (
	"math/rand"

	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/leveldata"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MatchData is the singleton per-match state. The ball owner is not stored
// here; it is derived from the ball's state.
type MatchData struct {
	Difficulty  cfg.DifficultyLevel
	Kickoff     donburi.Entity // non-null only during the kickoff freeze
	ScoringTeam int
	ScoreTimer  int // negative while play is live
	Camera      math.Vec2
	Tick        int

	// Teams that kicked the ball this tick; they skip team switching.
	Shot [2]bool

	// Aim point chosen for the current owner, for debug display.
	ShootTarget    math.Vec2
	HasShootTarget bool

	// Predicted intercept points, keyed by player entity, for debug display.
	Intercepts map[donburi.Entity]math.Vec2

	Layout *leveldata.Layout
	Rand   *rand.Rand
	Log    *log.Logger
}

// Preset returns the difficulty settings in effect.
func (m *MatchData) Preset() cfg.Difficulty {
	return m.Difficulty.Preset()
}

// Live reports whether goals can currently be scored.
func (m *MatchData) Live() bool {
	return m.ScoreTimer < 0
}

var Match = donburi.NewComponentType[MatchData]()
