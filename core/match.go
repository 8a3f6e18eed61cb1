// Package core runs a soccer match: fourteen players, one ball and two teams
// that are each driven by a human controller or by the computer.
package core

import (
	"io"
	"math/rand"
	"sort"

	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/leveldata"
	"github.com/automoto/substitute-soccer/systems"
	"github.com/automoto/substitute-soccer/systems/factory"
	"github.com/automoto/substitute-soccer/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// TeamInput is one team's controller state for a tick: the held direction
// and whether shoot was pressed this tick.
type TeamInput = components.ControlsData

// Options configures a new match.
type Options struct {
	Difficulty cfg.DifficultyLevel
	Humans     [2]bool // which teams take TeamInput
	Seed       int64   // start position jitter
	Layout     *leveldata.Layout
	Logger     *log.Logger
}

// Match owns the entity world of one match.
type Match struct {
	ecs    *ecs.ECS
	match  *donburi.Entry
	logger *log.Logger
}

// NewMatch builds a match ready for its first kickoff.
func NewMatch(opts Options) *Match {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.UpdateTimers)
	e.AddSystem(systems.UpdateMatch)
	e.AddSystem(systems.UpdateBehaviors)
	e.AddSystem(systems.UpdateTargets)
	e.AddSystem(systems.UpdateMovement)
	e.AddSystem(systems.UpdateBall)
	e.AddSystem(systems.UpdateTeamSwitching)
	e.AddSystem(systems.UpdateCamera)

	entry := factory.CreateMatch(e, factory.MatchSetup{
		Difficulty: opts.Difficulty,
		Humans:     opts.Humans,
		Layout:     opts.Layout,
		Rand:       rand.New(rand.NewSource(opts.Seed)),
		Log:        logger,
	})

	logger.Info("match created",
		"difficulty", opts.Difficulty,
		"humans", opts.Humans,
		"seed", opts.Seed,
	)

	return &Match{ecs: e, match: entry, logger: logger}
}

// Advance runs one simulation tick. Input for computer-controlled teams is
// ignored.
func (m *Match) Advance(inputs [2]TeamInput) {
	for entry := range components.TeamInfo.Iter(m.ecs.World) {
		info := components.TeamInfo.Get(entry)
		in := TeamInput{}
		if info.Human {
			in = inputs[info.Team]
		}
		components.Controls.SetValue(entry, in)
	}
	m.ecs.Update()
}

// ECS exposes the entity world so renderers can be attached.
func (m *Match) ECS() *ecs.ECS {
	return m.ecs
}

func (m *Match) data() *components.MatchData {
	return components.Match.Get(m.match)
}

// PlayerView is a read-only snapshot of one player.
type PlayerView struct {
	Entity   donburi.Entity
	Slot     int
	Team     int
	Position math.Vec2
	Home     math.Vec2
	Target   math.Vec2
	Facing   int
	Frame    float64
	Timer    int
	Active   bool
	LeadRank int
}

// BallView is a read-only snapshot of the ball.
type BallView struct {
	Position math.Vec2
	Velocity math.Vec2
	Free     bool
	Owner    donburi.Entity
}

// Players returns every player in slot order.
func (m *Match) Players() []PlayerView {
	w := m.ecs.World
	var active [2]donburi.Entity
	for entry := range components.TeamInfo.Iter(w) {
		info := components.TeamInfo.Get(entry)
		active[info.Team] = info.Active
	}

	views := make([]PlayerView, 0, 2*len(cfg.Field.StartPositions))
	for e := range tags.Player.Iter(w) {
		views = append(views, playerView(e, active))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Slot < views[j].Slot })
	return views
}

func playerView(e *donburi.Entry, active [2]donburi.Entity) PlayerView {
	anim := components.Animation.Get(e)
	team := *components.Team.Get(e)
	return PlayerView{
		Entity:   e.Entity(),
		Slot:     *components.Slot.Get(e),
		Team:     team,
		Position: *components.Position.Get(e),
		Home:     *components.Home.Get(e),
		Target:   components.Target.Get(e).Position,
		Facing:   anim.Facing,
		Frame:    anim.Frame,
		Timer:    *components.Timer.Get(e),
		Active:   active[team] == e.Entity(),
		LeadRank: components.Lead.Get(e).Rank,
	}
}

// Ball returns the ball snapshot.
func (m *Match) Ball() BallView {
	entry, _ := tags.Ball.First(m.ecs.World)
	data := components.Ball.Get(entry)
	v, free := data.Velocity()
	owner, _ := data.Owner()
	return BallView{
		Position: *components.Position.Get(entry),
		Velocity: v,
		Free:     free,
		Owner:    owner,
	}
}

// Owner returns the player dribbling the ball, if any.
func (m *Match) Owner() (PlayerView, bool) {
	owner := m.Ball().Owner
	if owner == donburi.Null {
		return PlayerView{}, false
	}
	for _, p := range m.Players() {
		if p.Entity == owner {
			return p, true
		}
	}
	return PlayerView{}, false
}

// Score returns a team's goal count.
func (m *Match) Score(team int) int {
	for entry := range components.TeamInfo.Iter(m.ecs.World) {
		if info := components.TeamInfo.Get(entry); info.Team == team {
			return info.Score
		}
	}
	return 0
}

// CameraFocus is the field point the view is centred on.
func (m *Match) CameraFocus() math.Vec2 {
	return m.data().Camera
}

// ShootTarget is the owner's evaluated aim point this tick.
func (m *Match) ShootTarget() (math.Vec2, bool) {
	d := m.data()
	return d.ShootTarget, d.HasShootTarget
}

// ScoreTimer counts down the celebration after a goal; negative while live.
func (m *Match) ScoreTimer() int {
	return m.data().ScoreTimer
}

// Tick is the number of ticks advanced so far.
func (m *Match) Tick() int {
	return m.data().Tick
}
