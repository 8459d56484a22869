package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seatjam/internal/config"
	"github.com/vovakirdan/seatjam/internal/games/seatjam/core"
	"github.com/vovakirdan/seatjam/internal/games/seatjam/levels"
)

var (
	flagStrict       bool
	flagScrambleOut  string
	flagScrambleMove int
	flagSlack        int
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect, validate and scramble levels",
	Long: `Work with Seat Jam level files.

Levels come from the built-in set unless --levels points to a directory.

Examples:
  seatjam levels list
  seatjam levels show 03_cinema
  seatjam levels validate ./my-levels
  seatjam levels scramble 03_cinema --seed 7 --out ./my-levels/cinema_7.yaml`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels in play order",
	Args:  cobra.NoArgs,
	RunE:  runLevelsList,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a level as an ASCII board",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsShow,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check every level file in a directory",
	Long: `Load every level file and report problems.
Without a directory the --levels directory or the built-in set is checked.
With --strict, levels that start out solved are reported too.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevelsValidate,
}

var levelsScrambleCmd = &cobra.Command{
	Use:   "scramble <id>",
	Short: "Generate a new puzzle by scrambling a level's solution",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsScramble,
}

func init() {
	levelsValidateCmd.Flags().BoolVar(&flagStrict, "strict", false, "Also reject levels that start solved")

	defaults := config.DefaultSeatJamConfig().Scramble
	levelsScrambleCmd.Flags().IntVar(&flagScrambleMove, "moves", defaults.Moves, "Random moves applied to the solution")
	levelsScrambleCmd.Flags().IntVar(&flagSlack, "slack", defaults.Slack, "Extra moves allowed on top of --moves")
	levelsScrambleCmd.Flags().StringVar(&flagScrambleOut, "out", "", "Write the level YAML here instead of stdout")

	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsShowCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
	levelsCmd.AddCommand(levelsScrambleCmd)
}

// levelLoader returns the loader for the --levels directory or the built-in set.
func levelLoader() *levels.Loader {
	if flagLevels != "" {
		return levels.NewLoader(flagLevels).WithLogger(logger)
	}
	return levels.NewBuiltinLoader().WithLogger(logger)
}

func runLevelsList(_ *cobra.Command, _ []string) error {
	all, err := levelLoader().LoadAll()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No levels found.")
		return nil
	}

	rows := make([][]string, 0, len(all))
	for _, l := range all {
		moves := "-"
		if l.Moves > 0 {
			moves = strconv.Itoa(l.Moves)
		}
		rows = append(rows, []string{
			l.ID,
			fmt.Sprintf("%dx%d", l.Rows, l.Cols),
			strconv.Itoa(len(l.Robots)),
			moves,
			l.Name,
		})
	}
	printTable([]string{"ID", "Size", "Robots", "Moves", "Name"}, rows)
	return nil
}

func runLevelsShow(_ *cobra.Command, args []string) error {
	lvl, err := levelLoader().LoadByID(args[0])
	if err != nil {
		return err
	}
	board, err := lvl.NewBoard()
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s (%dx%d)\n", lvl.ID, lvl.Name, lvl.Rows, lvl.Cols)
	if d := lvl.Difficulty(); d != "" {
		fmt.Printf("Difficulty: %s\n", d)
	}
	if lvl.Moves > 0 {
		fmt.Printf("Moves: %d\n", lvl.Moves)
	}
	fmt.Printf("Seated: %d/%d\n", board.CorrectCount(), board.SeatCount())
	fmt.Println()
	fmt.Println(core.RenderASCII(board, nil))

	if len(lvl.Metadata) > 0 {
		fmt.Println()
		keys := make([]string, 0, len(lvl.Metadata))
		for k := range lvl.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %s\n", k, lvl.Metadata[k])
		}
	}
	return nil
}

func runLevelsValidate(_ *cobra.Command, args []string) error {
	loader := levelLoader()
	if len(args) == 1 {
		loader = levels.NewLoader(args[0]).WithLogger(logger)
	}

	results, err := loader.Check(flagStrict)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No level files found.")
		return nil
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("  FAIL  %s: %v\n", r.Path, r.Err)
			continue
		}
		fmt.Printf("  ok    %s (%s)\n", r.Path, r.ID)
	}

	fmt.Println()
	fmt.Printf("%d files, %d invalid\n", len(results), failed)
	if failed > 0 {
		return fmt.Errorf("%d invalid level files", failed)
	}
	return nil
}

func runLevelsScramble(_ *cobra.Command, args []string) error {
	lvl, err := levelLoader().LoadByID(args[0])
	if err != nil {
		return err
	}

	params := core.DefaultScrambleParams()
	params.Moves = flagScrambleMove
	params.Slack = flagSlack
	params.Seed = flagSeed

	scenario, err := core.Scramble(lvl.Scenario(), params)
	if err != nil {
		return fmt.Errorf("cannot scramble %s: %w", lvl.ID, err)
	}
	scenario.ID = fmt.Sprintf("%s_scrambled_%d", lvl.ID, flagSeed)
	scenario.Name = lvl.Name + " (scrambled)"

	data, err := levels.EncodeYAML(scenario, map[string]string{
		"source": lvl.ID,
		"seed":   fmt.Sprintf("%d", flagSeed),
	})
	if err != nil {
		return err
	}

	if flagScrambleOut == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(flagScrambleOut, data, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", flagScrambleOut, err)
	}

	board, err := core.NewBoard(scenario)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (move limit %d)\n\n", flagScrambleOut, scenario.MoveLimit)
	fmt.Println(core.RenderASCII(board, nil))
	return nil
}
