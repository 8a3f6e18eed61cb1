package systems

import (
	"sort"

	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// playersBySlot returns every player entry in spawn order. All per-player
// passes iterate in this order so ties resolve the same way every run.
func playersBySlot(w donburi.World) []*donburi.Entry {
	var players []*donburi.Entry
	for e := range tags.Player.Iter(w) {
		players = append(players, e)
	}
	sort.Slice(players, func(i, j int) bool {
		return *components.Slot.Get(players[i]) < *components.Slot.Get(players[j])
	})
	return players
}

func mustMatch(w donburi.World) *components.MatchData {
	entry, ok := components.Match.First(w)
	if !ok {
		panic("systems: match singleton missing")
	}
	return components.Match.Get(entry)
}

func mustBall(w donburi.World) *donburi.Entry {
	entry, ok := tags.Ball.First(w)
	if !ok {
		panic("systems: ball entity missing")
	}
	return entry
}

// teamInfos returns the two team entries indexed by team number.
func teamInfos(w donburi.World) [2]*donburi.Entry {
	var teams [2]*donburi.Entry
	for e := range components.TeamInfo.Iter(w) {
		teams[components.TeamInfo.Get(e).Team] = e
	}
	if teams[0] == nil || teams[1] == nil {
		panic("systems: team entities missing")
	}
	return teams
}

// ballOwner returns the owning player's entry, or nil for a free ball.
func ballOwner(w donburi.World, ball *donburi.Entry) *donburi.Entry {
	owner, ok := components.Ball.Get(ball).Owner()
	if !ok || !w.Valid(owner) {
		return nil
	}
	return w.Entry(owner)
}

// attackDir is the sign of y travel toward the goal a team attacks.
func attackDir(team int) float64 {
	if team == 0 {
		return -1
	}
	return 1
}

// goalPoint is the centre of the goal line that team attacks, placed at the
// level edge.
func goalPoint(team int) math.Vec2 {
	if team == 0 {
		return math.Vec2{X: cfg.Field.HalfLevelW(), Y: 0}
	}
	return math.Vec2{X: cfg.Field.HalfLevelW(), Y: cfg.Field.LevelH}
}

// nearest returns the candidate closest to point. Candidates are expected in
// slot order; a tie keeps the earlier one. weight may scale each distance and
// is optional.
func nearest(candidates []*donburi.Entry, point math.Vec2, weight func(*donburi.Entry) float64) *donburi.Entry {
	var best *donburi.Entry
	bestDist := 0.0
	for _, c := range candidates {
		d := components.Position.Get(c).Distance(point)
		if weight != nil {
			d *= weight(c)
		}
		if best == nil || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// teamPlayers filters players to one team, keeping slot order.
func teamPlayers(players []*donburi.Entry, team int) []*donburi.Entry {
	out := make([]*donburi.Entry, 0, len(players)/2)
	for _, p := range players {
		if *components.Team.Get(p) == team {
			out = append(out, p)
		}
	}
	return out
}
