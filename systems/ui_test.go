package systems

import (
	"testing"

	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
)

func pressOnce(ids ...cfg.ActionID) func(cfg.ActionID) bool {
	return func(id cfg.ActionID) bool {
		for _, want := range ids {
			if want == id {
				return true
			}
		}
		return false
	}
}

func TestStepMenuPicksPlayersThenDifficulty(t *testing.T) {
	tests := []struct {
		name           string
		downs          int
		wantPlayers    int
		wantDifficulty bool
	}{
		{"watch asks for difficulty", 0, 0, true},
		{"one player asks for difficulty", 1, 1, true},
		{"two players start at once", 2, 2, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			menu := &components.MenuData{Stage: components.MenuStagePlayers, Difficulty: cfg.DifficultyMedium}
			for i := 0; i < tc.downs; i++ {
				StepMenu(menu, pressOnce(cfg.ActionMenuDown))
			}
			StepMenu(menu, pressOnce(cfg.ActionMenuSelect))
			if menu.NumPlayers != tc.wantPlayers {
				t.Fatalf("NumPlayers = %d, want %d", menu.NumPlayers, tc.wantPlayers)
			}
			if !tc.wantDifficulty {
				if !menu.Done || menu.Stage != components.MenuStagePlayers {
					t.Fatalf("Done=%v stage %v, want done without the difficulty page", menu.Done, menu.Stage)
				}
				return
			}
			if menu.Done || menu.Stage != components.MenuStageDifficulty {
				t.Fatalf("Done=%v stage %v, want the difficulty page", menu.Done, menu.Stage)
			}
			if menu.SelectedIndex != int(cfg.DifficultyMedium) {
				t.Fatalf("difficulty page should start on the previous choice, got %d", menu.SelectedIndex)
			}

			StepMenu(menu, pressOnce(cfg.ActionMenuDown))
			StepMenu(menu, pressOnce(cfg.ActionMenuSelect))
			if !menu.Done || menu.Difficulty != cfg.DifficultyHard {
				t.Fatalf("Done=%v Difficulty=%v, want done on hard", menu.Done, menu.Difficulty)
			}
		})
	}
}

func TestStepMenuWrapsAndBacksOut(t *testing.T) {
	menu := &components.MenuData{Stage: components.MenuStagePlayers}

	StepMenu(menu, pressOnce(cfg.ActionMenuUp))
	if menu.SelectedIndex != maxHumanTeams {
		t.Fatalf("wrap up: SelectedIndex = %d, want %d", menu.SelectedIndex, maxHumanTeams)
	}
	StepMenu(menu, pressOnce(cfg.ActionMenuDown))
	if menu.SelectedIndex != 0 {
		t.Fatalf("wrap down: SelectedIndex = %d, want 0", menu.SelectedIndex)
	}

	StepMenu(menu, pressOnce(cfg.ActionMenuDown))
	StepMenu(menu, pressOnce(cfg.ActionMenuSelect))
	StepMenu(menu, pressOnce(cfg.ActionMenuBack))
	if menu.Stage != components.MenuStagePlayers || menu.SelectedIndex != 1 {
		t.Fatalf("back from difficulty: stage %v index %d", menu.Stage, menu.SelectedIndex)
	}

	StepMenu(menu, pressOnce(cfg.ActionMenuBack))
	if !menu.Quit {
		t.Fatal("back on the first page should quit")
	}
}

func TestMenuChoiceRoundTrip(t *testing.T) {
	data, err := encodeMenuChoice(MenuChoice{NumPlayers: 2, Difficulty: cfg.DifficultyEasy})
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeMenuChoice(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.NumPlayers != 2 || got.Difficulty != cfg.DifficultyEasy {
		t.Fatalf("decoded %+v", *got)
	}
}

func TestDecodeMenuChoiceRejectsBadInput(t *testing.T) {
	if _, err := decodeMenuChoice([]byte("{")); err == nil {
		t.Fatal("expected a parse error")
	}
	if _, err := decodeMenuChoice([]byte(`{"numPlayers":1,"difficulty":"brutal"}`)); err == nil {
		t.Fatal("expected an unknown difficulty error")
	}

	got, err := decodeMenuChoice([]byte(`{"numPlayers":9,"difficulty":"hard"}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.NumPlayers != 1 {
		t.Fatalf("out of range player count should fall back to 1, got %d", got.NumPlayers)
	}
}

func TestControlsFromBinding(t *testing.T) {
	b := &components.InputBindingData{}
	b.Current[cfg.ActionMoveLeft] = true
	b.Current[cfg.ActionMoveUp] = true
	b.Current[cfg.ActionShoot] = true

	got := controlsFromBinding(b)
	if got.Move.X != -1 || got.Move.Y != -1 {
		t.Fatalf("Move = %v, want (-1, -1)", got.Move)
	}
	if !got.Shoot {
		t.Fatal("first frame of shoot should fire")
	}

	b.Previous = b.Current
	if controlsFromBinding(b).Shoot {
		t.Fatal("held shoot should not fire again")
	}

	b.Current[cfg.ActionMoveRight] = true
	if got := controlsFromBinding(b); got.Move.X != 0 {
		t.Fatalf("opposite directions should cancel, got %v", got.Move)
	}
}

func TestGetActionEdges(t *testing.T) {
	in := &components.InputData{}
	in.Current[cfg.ActionMenuSelect] = true
	if s := GetAction(in, cfg.ActionMenuSelect); !s.Pressed || !s.JustPressed || s.JustReleased {
		t.Fatalf("press: %+v", s)
	}
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	if s := GetAction(in, cfg.ActionMenuSelect); s.Pressed || s.JustPressed || !s.JustReleased {
		t.Fatalf("release: %+v", s)
	}
}

func TestHUDBannerFollowsGoals(t *testing.T) {
	e := newTestECS(t, cfg.DifficultyMedium, [2]bool{})
	UpdateHUD(e, 1.0/60)
	if hud := getOrCreateHUD(e); hud.Banner != nil {
		t.Fatal("no banner before a goal")
	}

	teams := teamInfos(e.World)
	components.TeamInfo.Get(teams[1]).Score++

	UpdateHUD(e, 1.0/60)
	hud := getOrCreateHUD(e)
	if hud.Banner == nil || hud.BannerTeam != 1 {
		t.Fatalf("banner = %v team %d, want a banner for team 1", hud.Banner, hud.BannerTeam)
	}
	if hud.LastScores[1] != 1 {
		t.Fatalf("LastScores = %v", hud.LastScores)
	}

	UpdateHUD(e, bannerSeconds+1)
	if hud.Banner != nil {
		t.Fatal("banner should finish")
	}
}

func TestStepPause(t *testing.T) {
	pause := &components.PauseData{}

	StepPause(pause, pressOnce(cfg.ActionMenuSelect))
	if pause.IsPaused || pause.Leave {
		t.Fatal("menu keys should do nothing while playing")
	}

	StepPause(pause, pressOnce(cfg.ActionPause))
	if !pause.IsPaused || pause.SelectedOption != components.MenuResume {
		t.Fatalf("after pause: %+v", *pause)
	}

	StepPause(pause, pressOnce(cfg.ActionMenuDown))
	StepPause(pause, pressOnce(cfg.ActionMenuSelect))
	if !pause.Leave {
		t.Fatal("selecting the second option should leave the match")
	}

	resume := &components.PauseData{IsPaused: true, SelectedOption: components.MenuLeaveMatch}
	StepPause(resume, pressOnce(cfg.ActionMenuUp))
	StepPause(resume, pressOnce(cfg.ActionMenuSelect))
	if resume.IsPaused || resume.Leave {
		t.Fatalf("resume: %+v", *resume)
	}
}
