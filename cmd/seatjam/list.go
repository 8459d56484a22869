package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seatjam/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the playable modes",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		games := registry.List()
		if len(games) == 0 {
			fmt.Println("No games available.")
			return
		}

		rows := make([][]string, 0, len(games))
		for _, g := range games {
			rows = append(rows, []string{g.ID, g.Title, g.Description})
		}
		printTable([]string{"ID", "Title", "Description"}, rows)
		fmt.Println("Run 'seatjam play <id>' to start one.")
	},
}
