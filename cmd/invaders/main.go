// invaders is a terminal rendition of the Space Invaders arcade game.
//
// Usage:
//
//	invaders                 - Play the game
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show recorded runs and the high score
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.invaders/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "invaders",
	Short: "Space Invaders - defend your terminal",
	Long: `Space Invaders is a terminal take on the arcade classic: shoot down
wave after wave of descending aliens before they reach your ship.

Controls:
  Left/Right, A/D - Move
  Space           - Shoot
  P               - Pause
  O               - Options
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Running with no subcommand starts the game.

Examples:
  invaders
  invaders --fps 30
  invaders --config ./options.yaml
  invaders serve --ssh :2222
  invaders scores`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
