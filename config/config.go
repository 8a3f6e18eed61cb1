package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// FieldConfig describes the level and the pitch markings in field space (pixels).
type FieldConfig struct {
	LevelW float64
	LevelH float64

	HalfPitchW float64
	HalfPitchH float64

	GoalWidth float64
	GoalDepth float64

	// Computer players never plan a lead target outside this box.
	AIMinX, AIMaxX float64
	AIMinY, AIMaxY float64

	// Template start coordinates for team 0. Team 1 uses the mirrored points.
	StartPositions [7][2]float64
	StartJitter    float64

	// Spawn rows are compressed into each team's half: y = home.y/2 + offset.
	StartOffsetY [2]float64
}

// HalfLevelW returns the horizontal centre of the level.
func (f FieldConfig) HalfLevelW() float64 { return f.LevelW / 2 }

// HalfLevelH returns the vertical centre of the level.
func (f FieldConfig) HalfLevelH() float64 { return f.LevelH / 2 }

// HalfGoalW returns half the goal mouth width.
func (f FieldConfig) HalfGoalW() float64 { return f.GoalWidth / 2 }

// PlayerConfig contains movement and possession tuning for players.
type PlayerConfig struct {
	DefaultSpeed        float64
	InterceptSpeed      float64
	LeadBaseSpeed       float64
	HumanWithBallSpeed  float64
	HumanWithoutBall    float64
	HumanInputMagnitude float64

	// Lead distances for rank 0 and rank 1 defenders.
	LeadDistance1 float64
	LeadDistance2 float64

	// Attack-axis window for support runs and marking.
	ActiveRange  float64
	SupportAhead float64

	// Marking offset cap toward the ball when guarding a goal.
	GoalMarkOffset float64

	WalkCycle      float64
	MaxWalkAdvance float64
	LossCooldown   int
	KickCooldown   int
}

// BallConfig contains ball physics and dribble tuning.
type BallConfig struct {
	Drag           float64
	KickStrength   float64
	CaptureRadius  float64
	DribbleDistX   float64
	DribbleDistY   float64
	LooseKickSpeed float64
	StopSpeed      float64

	// Stopping distance of a kicked ball under drag and the tick count used at or beyond it.
	MaxTravel      float64
	MaxTravelSteps int

	ShotRange      float64
	ShotCone       float64
	LeadIterations int
	FallbackAhead  float64
}

// MatchConfig contains goal and kickoff timing.
type MatchConfig struct {
	CelebrationTicks int
	KickoffOffsetX   float64
	TickRate         int
	MaxCatchUpTicks  int
}

// CameraConfig contains camera pursuit configuration.
type CameraConfig struct {
	MaxStep float64
}

// DebugConfig contains debug/testing options.
type DebugConfig struct {
	SkipMenu        bool
	ShowTargets     bool
	ShowLeads       bool
	ShowPeers       bool
	ShowShootTarget bool
	ShowBodies      bool
}

// MenuConfig contains menu screen layout values.
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// PauseConfig contains pause overlay values.
type PauseConfig struct {
	OverlayColor      color.RGBA
	MenuOptions       []string
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
	Scale  float64
}

// Global configuration instances
var C *Config
var Field FieldConfig
var Player PlayerConfig
var Ball BallConfig
var Match MatchConfig
var Camera CameraConfig
var Debug DebugConfig
var Menu MenuConfig
var Pause PauseConfig

// Team colours, indexed by team.
var TeamColors = [2]color.RGBA{
	{R: 220, G: 40, B: 40, A: 255},
	{R: 40, G: 90, B: 230, A: 255},
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	PitchGreen   = color.RGBA{R: 46, G: 139, B: 60, A: 255}
	DarkGreen    = color.RGBA{R: 30, G: 100, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 480,
		Scale:  1,
	}

	Field = FieldConfig{
		LevelW:     1000,
		LevelH:     1400,
		HalfPitchW: 442,
		HalfPitchH: 622,
		GoalWidth:  186,
		GoalDepth:  20,
		AIMinX:     78,
		AIMaxX:     1000 - 78,
		AIMinY:     98,
		AIMaxY:     1400 - 98,
		StartPositions: [7][2]float64{
			{350, 550},
			{650, 450},
			{200, 850},
			{500, 750},
			{800, 950},
			{350, 1250},
			{650, 1150},
		},
		StartJitter:  32,
		StartOffsetY: [2]float64{550, 150},
	}

	Player = PlayerConfig{
		DefaultSpeed:        2.0,
		InterceptSpeed:      2.75,
		LeadBaseSpeed:       2.9,
		HumanWithBallSpeed:  3.0,
		HumanWithoutBall:    3.3,
		HumanInputMagnitude: 10,

		LeadDistance1: 10,
		LeadDistance2: 50,

		ActiveRange:  400,
		SupportAhead: 400,

		GoalMarkOffset: 150,

		WalkCycle:      72,
		MaxWalkAdvance: 4.5,
		LossCooldown:   60,
		KickCooldown:   10,
	}

	Ball = BallConfig{
		Drag:           0.98,
		KickStrength:   11.5,
		CaptureRadius:  18,
		DribbleDistX:   18,
		DribbleDistY:   16,
		LooseKickSpeed: 3,
		StopSpeed:      0.5,

		MaxTravel:      574,
		MaxTravelSteps: 190,

		ShotRange:      300,
		ShotCone:       0.8,
		LeadIterations: 8,
		FallbackAhead:  250,
	}

	Match = MatchConfig{
		CelebrationTicks: 60,
		KickoffOffsetX:   30,
		TickRate:         60,
		MaxCatchUpTicks:  5,
	}

	Camera = CameraConfig{
		MaxStep: 8,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 10, G: 40, B: 15, A: 255},
		TitleColor:        Yellow,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            110,
		MenuStartY:        190,
		MenuItemHeight:    24,
		MenuItemGap:       14,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		MenuOptions:       []string{"Resume", "Leave match"},
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    24,
		MenuItemGap:       14,
	}
}
