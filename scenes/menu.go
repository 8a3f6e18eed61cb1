package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the start menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     MatchSettings
	once         sync.Once
}

// NewMenuScene creates a new menu scene. Matches started from it use settings
// for everything the menu does not ask about.
func NewMenuScene(sc SceneChanger, settings MatchSettings) *MenuScene {
	return &MenuScene{sceneChanger: sc, settings: settings}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

// Quitting reports whether the player backed out of the first menu page.
func (ms *MenuScene) Quitting() bool {
	if ms.ecs == nil {
		return false
	}
	return systems.GetOrCreateMenu(ms.ecs).Quit
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	startMatch := func(choice systems.MenuChoice) {
		settings := ms.settings
		settings.Choice = choice
		ms.sceneChanger.ChangeScene(NewMatchScene(ms.sceneChanger, settings))
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(startMatch))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
