// substitute-soccer is a two-team top-down soccer game.
//
// Usage:
//
//	substitute-soccer                      - Start at the menu
//	substitute-soccer --players 2 --difficulty hard
//	                                       - Skip the menu and kick off
//
// Flags:
//
//	--config <path>      - Settings file (default search: ~/.substitute-soccer, ./configs)
//	--images <dir>       - Sprite directory; plain shapes are drawn without one
//	--seed <value>       - Start position seed (0 = random based on time)
//	--verbose            - Debug logging
package main

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/automoto/substitute-soccer/assets"
	"github.com/automoto/substitute-soccer/config"
	"github.com/automoto/substitute-soccer/fonts"
	"github.com/automoto/substitute-soccer/scenes"
	"github.com/automoto/substitute-soccer/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type quitter interface {
	Quitting() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	if q, ok := g.scene.(quitter); ok && q.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var (
	flagConfig     string
	flagImages     string
	flagSeed       int64
	flagPlayers    int
	flagDifficulty string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "substitute-soccer",
	Short: "Two-team top-down soccer",
	Long: `Substitute Soccer is a top-down soccer game for zero, one or two
players against the computer.

Team 1 plays with the arrow keys and Space, team 2 with WASD and Left Shift.
Gamepads are assigned to teams in connection order. F1 toggles the planner
overlay and Escape returns to the menu.

Examples:
  substitute-soccer
  substitute-soccer --players 1 --difficulty easy
  substitute-soccer --images ./sprites`,
	Args: cobra.NoArgs,
	RunE: runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to settings file")
	rootCmd.Flags().StringVar(&flagImages, "images", "", "Directory of sprite images (overrides the settings file)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Start position seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagPlayers, "players", -1, "Human teams (0-2); skips the menu when set")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Computer difficulty: easy, medium or hard")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "soccer",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	settings, err := config.LoadSettings(flagConfig)
	if err != nil {
		return err
	}
	settings.Apply()

	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	if flagPlayers > 2 {
		return fmt.Errorf("--players must be between 0 and 2, got %d", flagPlayers)
	}

	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	images := settings.ImagesDir
	if flagImages != "" {
		images = flagImages
	}
	var textures *assets.Textures
	if images != "" {
		textures, err = assets.LoadTextures(os.DirFS(images))
		if err != nil {
			logger.Fatal("could not load sprites", "dir", images, "err", err)
		}
		logger.Debug("sprites loaded", "dir", images, "count", len(assets.TextureKeys()))
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Persistence is optional; the menu falls back to its defaults.
	_ = systems.InitPersistence()

	matchSettings := scenes.MatchSettings{
		Seed:     seed,
		Layout:   assets.MustLoadLayout(),
		Textures: textures,
		Logger:   logger,
	}

	g := &Game{}
	if flagPlayers >= 0 || config.Debug.SkipMenu {
		players := flagPlayers
		if players < 0 {
			players = 1
		}
		matchSettings.Choice = systems.MenuChoice{NumPlayers: players, Difficulty: difficulty}
		g.scene = scenes.NewMatchScene(g, matchSettings)
	} else {
		g.scene = scenes.NewMenuScene(g, matchSettings)
	}

	ebiten.SetWindowTitle("Substitute Soccer")
	ebiten.SetWindowSize(int(float64(config.C.Width)*config.C.Scale), int(float64(config.C.Height)*config.C.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	return ebiten.RunGame(g)
}
