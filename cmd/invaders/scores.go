package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dperique/invaders/internal/invaders"
	"github.com/dperique/invaders/internal/platform/tui"
	"github.com/dperique/invaders/internal/storage"
)

var (
	flagBoard bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs and the high score",
	Long: `Display the top 10 runs and the all-time high score.

Examples:
  invaders scores
  invaders scores --board    # interactive scoreboard
  invaders scores --clear    # wipe recorded runs, the high score stays`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded runs, keeping the high score")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if clearErr := store.ClearRuns(invaders.GameID); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Println("Recorded runs cleared.")
		return
	}

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if boardErr := tui.RunScoreboard(store, width, height); boardErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", boardErr)
			os.Exit(1)
		}
		return
	}

	// Get top runs
	runs, err := store.TopRuns(invaders.GameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Space Invaders")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Wave", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "----", "----")

	// Print runs
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Wave, dateStr)
	}

	// Show the all-time record
	fmt.Println()
	if highScore, hsErr := store.HighScore(invaders.GameID); hsErr == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
