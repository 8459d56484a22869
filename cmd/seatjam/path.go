package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seatjam/internal/games/seatjam/core"
)

var pathCmd = &cobra.Command{
	Use:   "path <level> <r,c> <r,c>",
	Short: "Show the shortest path between two cells of a level",
	Long: `Find the shortest path between two cells on a level's starting board.

Robots on the board block the way; a robot on the start cell is the one
walking. Seats are only entered and left sideways.

Examples:
  seatjam path 03_cinema 5,0 2,1
  seatjam path 01_warmup 2,0 1,1 --levels ./my-levels`,
	Args: cobra.ExactArgs(3),
	RunE: runPath,
}

func runPath(_ *cobra.Command, args []string) error {
	lvl, err := levelLoader().LoadByID(args[0])
	if err != nil {
		return err
	}
	board, err := lvl.NewBoard()
	if err != nil {
		return err
	}

	from, err := core.ParsePos(args[1])
	if err != nil {
		return err
	}
	to, err := core.ParsePos(args[2])
	if err != nil {
		return err
	}

	grid := board.Grid()
	for _, p := range []core.Pos{from, to} {
		if !grid.InBounds(p) {
			return fmt.Errorf("%v is outside the %dx%d grid", p, grid.Rows(), grid.Cols())
		}
	}

	path := board.PathFinder().FindShortestPath(grid.At(from), grid.At(to))
	if path == nil {
		fmt.Printf("No path from %v to %v.\n\n", from, to)
		fmt.Println(core.RenderASCII(board, nil))
		return nil
	}

	fmt.Printf("%d steps:", path.Steps())
	for _, p := range path.Positions() {
		fmt.Printf(" %v", p)
	}
	fmt.Println()
	fmt.Println()
	fmt.Println(core.RenderASCII(board, path))
	return nil
}
