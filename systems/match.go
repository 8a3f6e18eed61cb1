package systems

import (
	stdmath "math"

	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch rebuilds the match when the celebration countdown reaches zero
// and detects goals while play is live.
func UpdateMatch(e *ecs.ECS) {
	match := mustMatch(e.World)

	switch {
	case match.ScoreTimer == 0:
		factory.ResetMatch(e)
	case match.Live():
		detectGoal(e, match)
	}
}

func detectGoal(e *ecs.ECS, match *components.MatchData) {
	ball := mustBall(e.World)
	pos := components.Position.Get(ball)
	if stdmath.Abs(pos.Y-cfg.Field.HalfLevelH()) <= cfg.Field.HalfPitchH {
		return
	}

	scoring := 1
	if pos.Y < cfg.Field.HalfLevelH() {
		scoring = 0
	}
	teams := teamInfos(e.World)
	info := components.TeamInfo.Get(teams[scoring])
	info.Score++

	match.ScoringTeam = scoring
	match.ScoreTimer = cfg.Match.CelebrationTicks

	if match.Log != nil {
		match.Log.Info("goal",
			"team", scoring,
			"score", [2]int{
				components.TeamInfo.Get(teams[0]).Score,
				components.TeamInfo.Get(teams[1]).Score,
			},
			"tick", match.Tick,
		)
	}
}
