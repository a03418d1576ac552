// hexstar is a terminal hex-grid pathfinding game.
//
// Usage:
//
//	hexstar list              - List available game modes
//	hexstar play <mode>       - Play a mode
//	hexstar menu              - Start menu to pick modes interactively
//	hexstar serve             - Start SSH server for remote play
//	hexstar scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible obstacle scatter
//	--db <path>     - Set database path (default: ~/.hexstar/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/hexstar/internal/games/hexstar"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexstar",
	Short: "Hexstar - hex-grid pathfinding in your terminal",
	Long: `Hexstar is a terminal game about walking a hexagonal grid.

Click a cell to set a destination and watch the shortest route update
live while you toggle obstacles and step around them.

Available commands:
  list     - Show all available game modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  hexstar list
  hexstar play hexstar
  hexstar play hexstar_scatter --obstacles dense
  hexstar menu
  hexstar serve --ssh :2222
  hexstar scores hexstar`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexstar/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
