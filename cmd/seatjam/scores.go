package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seatjam/internal/registry"
	"github.com/vovakirdan/seatjam/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game,
how many levels have been cleared, and optionally the most recent
level attempts.

Examples:
  seatjam scores seatjam
  seatjam scores seatjam --recent 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also list this many recent level attempts")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'seatjam list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'seatjam play %s' to set the first high score!\n", gameID)
	} else {
		rows := make([][]string, len(scores))
		for i, entry := range scores {
			rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(entry.Score), entry.CreatedAt.Format("2006-01-02 15:04")}
		}
		printTable([]string{"Rank", "Score", "Date"}, rows)

		fmt.Println()
		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		}
	}

	if cleared, err := store.ClearedLevels(gameID); err == nil && len(cleared) > 0 {
		fmt.Printf("Levels cleared: %d\n", len(cleared))
	}

	if flagRecent > 0 {
		printRecentLevels(store, gameID, flagRecent)
	}
}

// printRecentLevels lists the newest level attempts of a game.
func printRecentLevels(store *storage.Store, gameID string, limit int) {
	results, err := store.LevelResults(gameID, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving level results: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Recent levels:")
	if len(results) == 0 {
		fmt.Println("  none yet")
		return
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		rows[i] = []string{
			r.LevelID,
			outcome,
			strconv.Itoa(r.Moves),
			strconv.Itoa(r.MovesLeft),
			strconv.Itoa(r.Score),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	printTable([]string{"Level", "Result", "Moves", "Left", "Score", "Date"}, rows)
}
