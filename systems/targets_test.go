package systems

import (
	stdmath "math"
	"testing"

	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/yohamta/donburi/features/math"
)

func nearVec(a, b math.Vec2) bool {
	return stdmath.Abs(a.X-b.X) < 1e-9 && stdmath.Abs(a.Y-b.Y) < 1e-9
}

func TestSupportTarget(t *testing.T) {
	tests := []struct {
		name    string
		team    int
		home    math.Vec2
		ball    math.Vec2
		wantPos math.Vec2
	}{
		{"team 0 halfway to the point upfield", 0, math.Vec2{X: 500, Y: 900}, math.Vec2{X: 500, Y: 700}, math.Vec2{X: 500, Y: 600}},
		{"team 1 halfway to the point downfield", 1, math.Vec2{X: 300, Y: 600}, math.Vec2{X: 500, Y: 700}, math.Vec2{X: 400, Y: 850}},
		{"ball too far keeps home", 0, math.Vec2{X: 500, Y: 900}, math.Vec2{X: 500, Y: 400}, math.Vec2{X: 500, Y: 900}},
		{"exactly at the range keeps home", 1, math.Vec2{X: 200, Y: 300}, math.Vec2{X: 600, Y: 700}, math.Vec2{X: 200, Y: 300}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			target := components.TargetData{Position: tc.home, Speed: cfg.Player.DefaultSpeed}
			supportTarget(&target, tc.team, tc.ball)
			if !nearVec(target.Position, tc.wantPos) {
				t.Errorf("target = %v, want %v", target.Position, tc.wantPos)
			}
			if target.Speed != cfg.Player.DefaultSpeed {
				t.Errorf("speed = %v, want %v", target.Speed, cfg.Player.DefaultSpeed)
			}
		})
	}
}

func TestDefendTargetMarking(t *testing.T) {
	home := math.Vec2{X: 100, Y: 100}
	tests := []struct {
		name    string
		human   bool
		goal    bool
		markAt  math.Vec2
		ball    math.Vec2
		wantPos math.Vec2
	}{
		{"player mark goes halfway to the ball", false, false, math.Vec2{X: 500, Y: 600}, math.Vec2{X: 500, Y: 700}, math.Vec2{X: 500, Y: 650}},
		{"goal mark caps the offset", false, true, math.Vec2{X: 500, Y: 0}, math.Vec2{X: 500, Y: 300}, math.Vec2{X: 500, Y: 150}},
		{"goal mark stops at a close ball", false, true, math.Vec2{X: 500, Y: 0}, math.Vec2{X: 500, Y: 100}, math.Vec2{X: 500, Y: 100}},
		{"human marker chases the ball", true, false, math.Vec2{X: 500, Y: 600}, math.Vec2{X: 450, Y: 700}, math.Vec2{X: 450, Y: 700}},
		{"mark out of range keeps home", false, false, math.Vec2{X: 500, Y: 200}, math.Vec2{X: 500, Y: 700}, home},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestECS(t, cfg.DifficultyMedium, [2]bool{})
			w := e.World
			players := playersBySlot(w)
			teams := teamInfos(w)
			defender, owner, marked := players[1], players[0], players[2]
			place(owner, 900, 1300)
			giveBall(w, owner)
			place(marked, tc.markAt.X, tc.markAt.Y)

			components.Lead.Get(defender).Clear()
			mark := components.MarkData{Kind: components.MarkPlayer, Player: marked.Entity()}
			if tc.goal {
				mark = components.MarkData{Kind: components.MarkGoal, Goal: tc.markAt}
			}
			components.Mark.SetValue(defender, mark)

			target := components.TargetData{Position: home, Speed: cfg.Player.DefaultSpeed}
			defendTarget(w, &target, defender, owner, tc.human, teams, tc.ball)
			if !nearVec(target.Position, tc.wantPos) {
				t.Errorf("target = %v, want %v", target.Position, tc.wantPos)
			}
		})
	}
}

func TestDefendTargetLead(t *testing.T) {
	f := cfg.Field
	tests := []struct {
		name       string
		difficulty cfg.DifficultyLevel
		ownerHuman bool
		ownerAt    math.Vec2
		facing     int
		distance   float64
		wantPos    math.Vec2
		wantSpeed  float64
	}{
		{"ahead of a computer owner", cfg.DifficultyHard, false, math.Vec2{X: 500, Y: 500}, 0, 100, math.Vec2{X: 500, Y: 400}, cfg.Player.LeadBaseSpeed},
		{"clamped above the box", cfg.DifficultyHard, false, math.Vec2{X: 600, Y: 150}, 0, 100, math.Vec2{X: 600, Y: f.AIMinY}, cfg.Player.LeadBaseSpeed},
		{"clamped right of the box", cfg.DifficultyEasy, false, math.Vec2{X: 880, Y: 700}, 2, 100, math.Vec2{X: f.AIMaxX, Y: 700}, cfg.Player.LeadBaseSpeed},
		{"human owner adds the boost", cfg.DifficultyHard, true, math.Vec2{X: 500, Y: 500}, 0, 100, math.Vec2{X: 500, Y: 400}, cfg.Player.LeadBaseSpeed + cfg.DifficultyHard.Preset().SpeedBoost},
		{"human owner on medium", cfg.DifficultyMedium, true, math.Vec2{X: 500, Y: 500}, 0, 200, math.Vec2{X: 500, Y: 300}, cfg.Player.LeadBaseSpeed + cfg.DifficultyMedium.Preset().SpeedBoost},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestECS(t, tc.difficulty, [2]bool{tc.ownerHuman, false})
			w := e.World
			players := playersBySlot(w)
			teams := teamInfos(w)
			owner, defender := players[0], players[1]
			place(owner, tc.ownerAt.X, tc.ownerAt.Y)
			components.Animation.SetValue(owner, components.AnimationData{Facing: tc.facing})
			giveBall(w, owner)
			components.Lead.SetValue(defender, components.LeadData{Distance: tc.distance, HasDistance: true, Rank: 0})

			target := components.TargetData{Position: math.Vec2{X: 100, Y: 100}, Speed: cfg.Player.DefaultSpeed}
			defendTarget(w, &target, defender, owner, false, teams, tc.ownerAt)
			if !nearVec(target.Position, tc.wantPos) {
				t.Errorf("target = %v, want %v", target.Position, tc.wantPos)
			}
			if stdmath.Abs(target.Speed-tc.wantSpeed) > 1e-9 {
				t.Errorf("speed = %v, want %v", target.Speed, tc.wantSpeed)
			}
		})
	}
}

func TestTargetsOwnerTeamSupports(t *testing.T) {
	e := newTestECS(t, cfg.DifficultyMedium, [2]bool{})
	w := e.World
	players := playersBySlot(w)
	owner, mate := players[0], players[2]
	place(owner, 500, 700)
	giveBall(w, owner)
	components.Home.SetValue(mate, math.Vec2{X: 300, Y: 900})

	UpdateTargets(e)

	want := math.Vec2{X: 400, Y: 600}
	if got := components.Target.Get(mate).Position; !nearVec(got, want) {
		t.Errorf("support target = %v, want %v", got, want)
	}
	if got := components.Target.Get(owner).Position; got != *components.Home.Get(owner) {
		t.Errorf("owner target = %v, want its home", got)
	}
}
