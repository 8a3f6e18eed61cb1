package systems

import (
	"fmt"

	"github.com/automoto/substitute-soccer/archetypes"
	"github.com/automoto/substitute-soccer/components"
	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	gweenease "github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin      = 8
	hudPanelWidth  = 150
	hudPanelHeight = 26
	bannerSeconds  = 1.6
	bannerWidth    = 220
)

var teamNames = [2]string{"RED", "BLUE"}

// getOrCreateHUD returns the singleton HUD component, creating if needed
func getOrCreateHUD(e *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		entry = archetypes.HUD.Spawn(e)
	}
	return components.HUD.Get(entry)
}

// UpdateHUD starts the goal banner when a score changes and advances it by dt
// seconds.
func UpdateHUD(e *ecs.ECS, dt float32) {
	hud := getOrCreateHUD(e)
	teams := teamInfos(e.World)

	for team, entry := range teams {
		score := components.TeamInfo.Get(entry).Score
		if score > hud.LastScores[team] {
			width := float32(cfg.C.Width)
			hud.Banner = gween.New(-bannerWidth, width, bannerSeconds, gweenease.OutInCubic)
			hud.BannerX = -bannerWidth
			hud.BannerTeam = team
		}
		hud.LastScores[team] = score
	}

	if hud.Banner == nil {
		return
	}
	x, done := hud.Banner.Update(dt)
	hud.BannerX = x
	if done {
		hud.Banner = nil
	}
}

// DrawHUD renders the scoreboard and, after a goal, the sliding banner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	teams := teamInfos(e.World)
	width := float32(screen.Bounds().Dx())

	panelX := (width - hudPanelWidth) / 2
	vector.FillRect(screen, panelX, hudMargin, hudPanelWidth, hudPanelHeight, cfg.BlackOverlay, false)

	face := fonts.Bold.Get()
	for team, entry := range teams {
		score := components.TeamInfo.Get(entry).Score
		label := fmt.Sprintf("%s %d", teamNames[team], score)
		x := int(panelX) + 10 + team*(hudPanelWidth/2)
		text.Draw(screen, label, face, x, hudMargin+20, cfg.TeamColors[team])
	}

	hud := getOrCreateHUD(e)
	if hud.Banner == nil {
		return
	}
	bannerY := float32(screen.Bounds().Dy())/2 - 30
	vector.FillRect(screen, hud.BannerX, bannerY, bannerWidth, 48, cfg.BlackOverlay, false)
	text.Draw(screen, "GOAL!", fonts.Title.Get(), int(hud.BannerX)+50, int(bannerY)+38, cfg.TeamColors[hud.BannerTeam])
}
