package core_test

import (
	"testing"

	"github.com/vovakirdan/seatjam/internal/games/seatjam/core"
)

// cinemaSeats is the two-column cinema layout used by the built-in levels.
func cinemaSeats() core.SeatMap {
	return core.SeatMap{
		"A1": core.P(4, 1),
		"A2": core.P(3, 1),
		"A3": core.P(2, 1),
		"A4": core.P(1, 1),
		"B1": core.P(4, 2),
		"B2": core.P(3, 2),
		"B3": core.P(2, 2),
		"B4": core.P(1, 2),
	}
}

// cinemaScenario is the cinema layout with its original robot placement.
func cinemaScenario() core.Scenario {
	return core.Scenario{
		ID:    "cinema",
		Name:  "Cinema",
		Rows:  6,
		Cols:  4,
		Seats: cinemaSeats(),
		Robots: []core.Placement{
			{Label: "A1", At: core.P(0, 0)},
			{Label: "A2", At: core.P(3, 0)},
			{Label: "A3", At: core.P(4, 0)},
			{Label: "A4", At: core.P(2, 3)},
			{Label: "B1", At: core.P(5, 1)},
			{Label: "B2", At: core.P(3, 2)},
			{Label: "B3", At: core.P(3, 3)},
			{Label: "B4", At: core.P(1, 2)},
		},
		MoveLimit: 12,
	}
}

func mustGrid(t *testing.T, rows, cols int, seats core.SeatMap) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(rows, cols, seats)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) failed: %v", rows, cols, err)
	}
	return g
}

func mustBoard(t *testing.T, s core.Scenario) *core.Board {
	t.Helper()
	b, err := core.NewBoard(s)
	if err != nil {
		t.Fatalf("NewBoard(%s) failed: %v", s.ID, err)
	}
	return b
}

func positions(cells []*core.Cell) []core.Pos {
	out := make([]core.Pos, len(cells))
	for i, c := range cells {
		out[i] = c.Key()
	}
	return out
}

func assertPositions(t *testing.T, got, expected []core.Pos) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}
}

func contains(cells []*core.Cell, target *core.Cell) bool {
	for _, c := range cells {
		if c == target {
			return true
		}
	}
	return false
}
