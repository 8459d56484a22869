// seatjam is a terminal puzzle: guide robots along the aisles into their
// labelled seats.
//
// Usage:
//
//	seatjam list                       - List available games
//	seatjam play <game>                - Play a game
//	seatjam menu                       - Start menu to pick games interactively
//	seatjam serve                      - Start SSH server for remote play
//	seatjam scores <game>              - Show high scores for a game
//	seatjam levels list|show|validate|scramble
//	seatjam path <level> <r,c> <r,c>   - Show the shortest path between two cells
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.seatjam/scores.db)
//	--levels <dir>       - Load campaign levels from a directory
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seatjam/internal/games/seatjam"
	"github.com/vovakirdan/seatjam/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLevels   string
	flagLogLevel string
	flagMono     bool
)

// logger reports CLI problems on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "seatjam"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seatjam",
	Short: "Seat Jam - seat the robots in your terminal",
	Long: `Seat Jam is a terminal puzzle. Robots wander a grid of aisles and
seats; move each one along the aisles into the seat with its label.
Seats can only be entered from the side, and robots block each other.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Inspect, validate and scramble levels
  path     - Show the shortest path between two cells of a level

Examples:
  seatjam list
  seatjam play seatjam
  seatjam play seatjam_shuffle --seed 42
  seatjam menu
  seatjam serve --ssh :2222
  seatjam levels validate ./my-levels
  seatjam path 03_cinema 5,0 2,1`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.seatjam/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of campaign levels (default: built-in set)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use the monochrome menu theme")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(pathCmd)
}

// applyGlobalFlags configures logging and game settings shared by every command.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	log.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	seatjam.SetLevelsDir(flagLevels)
	if flagMono {
		tui.SetSeatJamTheme(tui.MonochromeSeatJamTheme())
		tui.SetMonochrome(true)
	}
	return nil
}
