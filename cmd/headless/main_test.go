package main

import (
	"context"
	"strings"
	"testing"

	"github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/core"
)

func TestPlayMatchIsDeterministic(t *testing.T) {
	opts := core.Options{Difficulty: config.DifficultyHard, Seed: 7}
	a, err := playMatch(context.Background(), opts, 1200, false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := playMatch(context.Background(), opts, 1200, false)
	if err != nil {
		t.Fatal(err)
	}

	if a.Ticks != 1200 {
		t.Fatalf("Ticks = %d, want 1200", a.Ticks)
	}
	if a.Score != b.Score || a.Possession != b.Possession || a.Turnovers != b.Turnovers {
		t.Fatalf("same seed gave different results: %+v vs %+v", a, b)
	}
	if a.Possession[0]+a.Possession[1] == 0 {
		t.Fatal("nobody touched the ball in 20 seconds")
	}
	for team := range a.Score {
		if len(a.GoalTicks[team]) != a.Score[team] {
			t.Fatalf("team %d: %d goal ticks for score %d", team, len(a.GoalTicks[team]), a.Score[team])
		}
	}
}

func TestPlayMatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := playMatch(ctx, core.Options{Seed: 1}, 5000, false)
	if err == nil {
		t.Fatal("expected context error")
	}
	if res.Ticks != 0 {
		t.Fatalf("Ticks = %d, want 0 for a cancelled context", res.Ticks)
	}
}

func TestRenderReport(t *testing.T) {
	out := renderReport([]matchResult{
		{Seed: 3, Ticks: 600, Score: [2]int{2, 1}, GoalTicks: [2][]int{{100, 400}, {250}}, Possession: [2]int{300, 100}, Turnovers: 4},
	})
	for _, want := range []string{"headless report", "75% / 25%", "goals at ticks [100 400]", "1 matches"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestResultsCSV(t *testing.T) {
	tests := []struct {
		name    string
		results []matchResult
		want    string
	}{
		{"header only", nil, "match,seed,ticks,score0,score1,possession0,possession1,turnovers\n"},
		{
			"one match",
			[]matchResult{{Seed: 9, Ticks: 60, Score: [2]int{0, 3}, Possession: [2]int{10, 40}, Turnovers: 2}},
			"match,seed,ticks,score0,score1,possession0,possession1,turnovers\n1,9,60,0,3,10,40,2\n",
		},
		{
			"negative seed and numbering",
			[]matchResult{{Seed: 1}, {Seed: -4, Ticks: 5, Score: [2]int{2, 1}}},
			"match,seed,ticks,score0,score1,possession0,possession1,turnovers\n1,1,0,0,0,0,0,0\n2,-4,5,2,1,0,0,0\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resultsCSV(tc.results)
			if err != nil {
				t.Fatalf("resultsCSV() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("resultsCSV() = %q, want %q", got, tc.want)
			}
		})
	}
}
