package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/substitute-soccer/assets"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/core"
	"github.com/automoto/substitute-soccer/leveldata"
	"github.com/automoto/substitute-soccer/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/features/math"
)

// MatchSettings configures a match scene.
type MatchSettings struct {
	Choice   systems.MenuChoice
	Seed     int64
	Layout   *leveldata.Layout
	Textures *assets.Textures // nil draws plain shapes
	Logger   *log.Logger
}

// MatchScene runs a match at the fixed tick rate, whatever the frame rate.
type MatchScene struct {
	sceneChanger SceneChanger
	settings     MatchSettings
	once         sync.Once

	match *core.Match
	loop  *core.Loop
	last  time.Time

	// Inputs sampled per frame. Shoot presses are held until a tick consumes
	// them so that frames without a tick do not drop them.
	move  [2]math.Vec2
	shoot [2]bool
}

// NewMatchScene creates a match scene.
func NewMatchScene(sc SceneChanger, settings MatchSettings) *MatchScene {
	return &MatchScene{sceneChanger: sc, settings: settings}
}

func (ms *MatchScene) Update() {
	ms.once.Do(ms.configure)

	e := ms.match.ECS()
	systems.UpdateInput(e)
	systems.UpdatePause(e)
	pause := systems.GetOrCreatePause(e)
	if pause.Leave {
		ms.settings.Logger.Info("match abandoned",
			"tick", ms.match.Tick(),
			"score", [2]int{ms.match.Score(0), ms.match.Score(1)},
		)
		ms.sceneChanger.ChangeScene(NewMenuScene(ms.sceneChanger, ms.settings))
		return
	}
	if pause.IsPaused {
		ms.last = time.Now()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		toggleDebug()
	}

	inputs := systems.PollTeamInputs(e.World)
	for team, in := range inputs {
		ms.move[team] = in.Move
		ms.shoot[team] = ms.shoot[team] || in.Shoot
	}

	now := time.Now()
	elapsed := now.Sub(ms.last)
	ms.last = now
	ms.loop.Advance(elapsed)

	systems.UpdateHUD(e, float32(elapsed.Seconds()))
}

func (ms *MatchScene) step() {
	var inputs [2]core.TeamInput
	for team := range inputs {
		inputs[team] = core.TeamInput{Move: ms.move[team], Shoot: ms.shoot[team]}
		ms.shoot[team] = false
	}
	ms.match.Advance(inputs)
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.match == nil {
		return
	}
	ms.match.ECS().Draw(screen)
}

func (ms *MatchScene) configure() {
	if ms.settings.Logger == nil {
		ms.settings.Logger = log.Default()
	}
	if ms.settings.Layout == nil {
		ms.settings.Layout = assets.MustLoadLayout()
	}

	choice := ms.settings.Choice
	humans := [2]bool{choice.NumPlayers >= 1, choice.NumPlayers >= 2}

	ms.match = core.NewMatch(core.Options{
		Difficulty: choice.Difficulty,
		Humans:     humans,
		Seed:       ms.settings.Seed,
		Layout:     ms.settings.Layout,
		Logger:     ms.settings.Logger,
	})

	e := ms.match.ECS()
	gamepads := ebiten.AppendGamepadIDs(nil)
	schemes := [2]cfg.ControlSchemeID{cfg.ControlSchemeArrows, cfg.ControlSchemeWASD}
	for team, human := range humans {
		if !human {
			continue
		}
		var pad *ebiten.GamepadID
		if team < len(gamepads) {
			pad = &gamepads[team]
		}
		systems.BindTeamInput(e.World, team, schemes[team], pad)
	}

	// Prime the edge detectors so keys still held from the menu do not fire.
	systems.UpdateInput(e)
	systems.PollTeamInputs(e.World)

	e.AddRenderer(cfg.Default, systems.DrawPitch)
	e.AddRenderer(cfg.Default, systems.NewDrawEntities(ms.settings.Textures))
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Overlay, systems.DrawHUD)
	e.AddRenderer(cfg.Overlay, systems.DrawPause)

	ms.loop = core.NewLoop(ms.step, cfg.Match.TickRate, cfg.Match.MaxCatchUpTicks)
	ms.last = time.Now()
}

func toggleDebug() {
	on := !cfg.Debug.ShowTargets
	cfg.Debug.ShowTargets = on
	cfg.Debug.ShowLeads = on
	cfg.Debug.ShowPeers = on
	cfg.Debug.ShowShootTarget = on
}
