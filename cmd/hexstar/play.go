package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexstar/internal/config"
	"github.com/vovakirdan/hexstar/internal/core"
	"github.com/vovakirdan/hexstar/internal/games/hexstar"
	"github.com/vovakirdan/hexstar/internal/platform/tui"
	"github.com/vovakirdan/hexstar/internal/registry"
	"github.com/vovakirdan/hexstar/internal/storage"
)

var (
	flagConfig    string
	flagObstacles string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Mouse move   - Highlight cell under the pointer
  Left click   - Set destination (route is planned automatically)
  Right click  - Toggle obstacle
  Q/W          - Step up-left / up-right
  A/D          - Step left / right
  Z/X          - Step down-left / down-right
  G            - Toggle edge shading
  P            - Pause
  R            - Restart
  Ctrl+C       - Quit

Obstacle presets (scatter mode):
  sparse - Few obstacles, open routes
  normal - Balanced obstacle coverage
  dense  - Heavy obstacle coverage, winding routes

Examples:
  hexstar play hexstar
  hexstar play hexstar_scatter
  hexstar play hexstar_scatter --obstacles dense
  hexstar play hexstar --config ./my-grid.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom grid config YAML")
	playCmd.Flags().StringVar(&flagObstacles, "obstacles", "", "Obstacle preset: sparse, normal, dense")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if the mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hexstar list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early for the preset selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and obstacle preset before creation
	hexstar.SetConfigPath(flagConfig)

	if gameID == "hexstar_scatter" {
		if flagObstacles != "" {
			preset := config.ObstaclePreset(flagObstacles)
			switch preset {
			case config.ObstaclesSparse, config.ObstaclesNormal, config.ObstaclesDense:
				hexstar.SetObstaclePreset(preset)
			default:
				fmt.Fprintf(os.Stderr, "Error: unknown obstacle preset %q\n", flagObstacles)
				fmt.Fprintln(os.Stderr, "Valid presets: sparse, normal, dense")
				os.Exit(1)
			}
		} else {
			// Show the scatter preset selector
			selection, selErr := tui.RunScatterMenu(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}

			// User pressed back or quit
			if selection == nil {
				return
			}

			hexstar.SetObstaclePreset(selection.Preset)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
