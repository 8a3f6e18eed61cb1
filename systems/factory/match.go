package factory

import (
	"math/rand"

	"github.com/automoto/substitute-soccer/archetypes"
	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/leveldata"
	"github.com/automoto/substitute-soccer/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const spaceCellSize = 20

// MatchSetup describes a new match.
type MatchSetup struct {
	Difficulty cfg.DifficultyLevel
	Humans     [2]bool
	Layout     *leveldata.Layout
	Rand       *rand.Rand
	Log        *log.Logger
}

// CreateMatch spawns the match singleton, the broad-phase space and both
// teams, then lays out the players for the first kickoff.
func CreateMatch(ecs *ecs.ECS, setup MatchSetup) *donburi.Entry {
	layout := setup.Layout
	if layout == nil {
		layout = leveldata.Default()
	}

	CreateSpace(ecs, int(layout.Width), int(layout.Height), spaceCellSize, spaceCellSize)

	entry := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(entry, components.MatchData{
		Difficulty:  setup.Difficulty,
		Kickoff:     donburi.Null,
		ScoringTeam: 1,
		Camera:      math.Vec2{X: layout.Width / 2, Y: layout.Height / 2},
		Intercepts:  make(map[donburi.Entity]math.Vec2),
		Layout:      layout,
		Rand:        setup.Rand,
		Log:         setup.Log,
	})

	for team, human := range setup.Humans {
		CreateTeam(ecs, team, human)
	}

	ResetMatch(ecs)
	return entry
}

// ResetMatch discards every player and the ball and rebuilds them at their
// start positions. The team that conceded kicks off.
func ResetMatch(ecs *ecs.ECS) {
	w := ecs.World
	matchEntry, ok := components.Match.First(w)
	if !ok {
		panic("factory: match singleton missing")
	}
	match := components.Match.Get(matchEntry)
	space := mustSpace(ecs)

	var stale []*donburi.Entry
	for e := range tags.Player.Iter(w) {
		stale = append(stale, e)
	}
	for e := range tags.Ball.Iter(w) {
		stale = append(stale, e)
	}
	for _, e := range stale {
		if body := components.Body.Get(e); body.Object != nil {
			space.Remove(body.Object)
		}
		w.Remove(e.Entity())
	}

	f := cfg.Field
	center := math.Vec2{X: f.HalfLevelW(), Y: f.HalfLevelH()}
	CreateBall(ecs, center)

	starts := match.Layout.Starts
	players := make([]*donburi.Entry, 0, 2*len(starts))
	for i, start := range starts {
		hx, hy := start.X+jitter(match.Rand), start.Y+jitter(match.Rand)
		p0 := CreatePlayer(ecs, 2*i, 0,
			math.Vec2{X: hx, Y: hy},
			math.Vec2{X: hx, Y: hy/2 + f.StartOffsetY[0]})

		hx, hy = f.LevelW-start.X+jitter(match.Rand), f.LevelH-start.Y+jitter(match.Rand)
		p1 := CreatePlayer(ecs, 2*i+1, 1,
			math.Vec2{X: hx, Y: hy},
			math.Vec2{X: hx, Y: hy/2 + f.StartOffsetY[1]})

		components.Peer.SetValue(p0, p1.Entity())
		components.Peer.SetValue(p1, p0.Entity())
		players = append(players, p0, p1)
	}

	for e := range components.TeamInfo.Iter(w) {
		info := components.TeamInfo.Get(e)
		info.Active = players[info.Team].Entity()
	}

	kicker := 1 - match.ScoringTeam
	kickoff := players[kicker]
	components.Position.SetValue(kickoff, math.Vec2{
		X: center.X - cfg.Match.KickoffOffsetX + 2*cfg.Match.KickoffOffsetX*float64(kicker),
		Y: center.Y,
	})
	body := components.Body.Get(kickoff)
	body.X = components.Position.Get(kickoff).X - body.W/2
	body.Y = center.Y - body.H/2
	body.Update()

	match.Kickoff = kickoff.Entity()
	match.Camera = center

	if match.Log != nil {
		match.Log.Info("kickoff", "team", kicker, "tick", match.Tick)
	}
}

func jitter(r *rand.Rand) float64 {
	j := cfg.Field.StartJitter
	if r == nil {
		return 0
	}
	return r.Float64()*2*j - j
}
