package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seatjam/internal/config"
	"github.com/vovakirdan/seatjam/internal/core"
	"github.com/vovakirdan/seatjam/internal/games/seatjam"
	"github.com/vovakirdan/seatjam/internal/platform/tui"
	"github.com/vovakirdan/seatjam/internal/registry"
	"github.com/vovakirdan/seatjam/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD   - Move the cursor
  Space/Enter   - Pick a robot, then its destination
  X/Backspace   - Drop the selection
  H             - Show the way to the selected robot's seat
  R             - Restart the level (new run after game over)
  P             - Pause
  Esc/B         - Back (when paused or game over)
  Ctrl+S        - Save a screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Three extra moves per level, wider shuffle slack
  normal - The level's own move budget
  hard   - Tight budgets, longer shuffles, no hints
  fixed  - No move limit

Examples:
  seatjam play seatjam
  seatjam play seatjam --level 3
  seatjam play seatjam --difficulty hard
  seatjam play seatjam_shuffle --seed 7
  seatjam play seatjam --config ./my-seatjam.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (skips the level picker)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'seatjam list' to see available games.")
		os.Exit(1)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	closeLog := redirectLogs()
	defer closeLog()

	cfg := terminalConfig()
	seatjam.SetConfigPath(flagConfig)
	seatjam.SetDifficultyPreset(flagDifficulty)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if gameID == seatjam.CampaignID {
		if flagLevel > 0 {
			seatjam.SetStartLevel(flagLevel)
		} else {
			selection, updatedCfg, err := tui.RunSeatJamLevelSelector(store, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				return
			}
			seatjam.SetStartLevel(selection.Level)
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// redirectLogs sends the default logger to ~/.seatjam/seatjam.log while the
// TUI owns the terminal. The returned func restores stderr.
func redirectLogs() func() {
	dir := config.DataDir()
	if dir == "" {
		return func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "seatjam.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return func() {}
	}

	log.SetOutput(f)
	log.SetReportTimestamp(true)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}
