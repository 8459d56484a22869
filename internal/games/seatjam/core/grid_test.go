package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/seatjam/internal/games/seatjam/core"
)

func TestNewGridValidation(t *testing.T) {
	testCases := []struct {
		name  string
		rows  int
		cols  int
		seats core.SeatMap
		code  string
	}{
		{"zero rows", 0, 4, nil, "BAD_DIMENSIONS"},
		{"negative cols", 3, -1, nil, "BAD_DIMENSIONS"},
		{"too many rows", 100000, 4, nil, "GRID_TOO_LARGE"},
		{"too many cols", 4, core.MaxGridSide + 1, nil, "GRID_TOO_LARGE"},
		{"empty label", 3, 3, core.SeatMap{"": core.P(1, 1)}, "EMPTY_LABEL"},
		{"seat below grid", 3, 3, core.SeatMap{"A1": core.P(3, 0)}, "SEAT_OUT_OF_BOUNDS"},
		{"seat right of grid", 3, 3, core.SeatMap{"A1": core.P(0, 3)}, "SEAT_OUT_OF_BOUNDS"},
		{"negative seat", 3, 3, core.SeatMap{"A1": core.P(-1, 0)}, "SEAT_OUT_OF_BOUNDS"},
		{"shared position", 3, 3, core.SeatMap{"A1": core.P(1, 1), "B1": core.P(1, 1)}, "DUPLICATE_SEAT"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewGrid(tc.rows, tc.cols, tc.seats)
			if !errors.Is(err, core.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			var ve core.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if ve.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, ve.Code)
			}
		})
	}
}

func TestNewGridDeterministicError(t *testing.T) {
	seats := core.SeatMap{"C": core.P(0, 0), "A": core.P(0, 0), "B": core.P(0, 0)}
	for i := 0; i < 20; i++ {
		_, err := core.NewGrid(2, 2, seats)
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "[DUPLICATE_SEAT] seats A and B share position 0,0" {
			t.Fatalf("unexpected message: %v", err)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := mustGrid(t, 6, 4, cinemaSeats())

	for row := -2; row < 8; row++ {
		for col := -2; col < 6; col++ {
			inBounds := row >= 0 && row < 6 && col >= 0 && col < 4
			cell := g.Cell(row, col)
			if inBounds && cell == nil {
				t.Errorf("Cell(%d,%d) should exist", row, col)
			}
			if !inBounds && cell != nil {
				t.Errorf("Cell(%d,%d) should be nil", row, col)
			}
			if cell != nil && (cell.Row() != row || cell.Col() != col) {
				t.Errorf("Cell(%d,%d) returned %v", row, col, cell)
			}
		}
	}
}

func TestGridCellTypes(t *testing.T) {
	g := mustGrid(t, 6, 4, cinemaSeats())

	for label, pos := range cinemaSeats() {
		cell := g.At(pos)
		if !cell.IsSeat() || cell.SeatLabel() != label {
			t.Errorf("expected seat %s at %v, got %v", label, pos, cell)
		}
		if g.SeatByLabel(label) != cell {
			t.Errorf("SeatByLabel(%s) does not return the cell at %v", label, pos)
		}
	}

	aisles := 0
	for _, c := range g.Cells() {
		if !c.IsSeat() {
			aisles++
			if c.SeatLabel() != "" {
				t.Errorf("aisle %v carries label %q", c, c.SeatLabel())
			}
		}
	}
	if aisles != 6*4-8 {
		t.Errorf("expected %d aisle cells, got %d", 6*4-8, aisles)
	}
}

func TestGridSeatsScansEveryCell(t *testing.T) {
	// Seats on the last row and last column must be found
	seats := core.SeatMap{
		"X": core.P(0, 0),
		"Y": core.P(2, 3),
		"Z": core.P(1, 3),
	}
	g := mustGrid(t, 3, 4, seats)

	got := positions(g.Seats())
	assertPositions(t, got, []core.Pos{core.P(0, 0), core.P(1, 3), core.P(2, 3)})
}

func TestGridSetBlocker(t *testing.T) {
	g := mustGrid(t, 2, 2, nil)

	g.SetBlocker(0, 1)
	if !g.Cell(0, 1).Blocked() {
		t.Error("expected (0,1) to be blocked")
	}

	// Out of bounds is a no-op
	g.SetBlocker(5, 5)
	g.SetBlocker(-1, 0)
	for _, c := range g.Cells() {
		if c.Key() != core.P(0, 1) && c.Blocked() {
			t.Errorf("unexpected blocker at %v", c)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := mustGrid(t, 2, 2, nil)
	other := mustGrid(t, 2, 2, nil)

	if !g.Contains(g.Cell(1, 1)) {
		t.Error("grid should contain its own cell")
	}
	if g.Contains(other.Cell(1, 1)) {
		t.Error("grid should not contain a foreign cell")
	}
	if g.Contains(nil) {
		t.Error("grid should not contain nil")
	}
}

func TestGridClone(t *testing.T) {
	g := mustGrid(t, 6, 4, cinemaSeats())
	g.SetBlocker(0, 3)
	g.Cell(0, 0).SetOccupant("A1")

	clone := g.Clone()

	if clone.Rows() != g.Rows() || clone.Cols() != g.Cols() {
		t.Fatal("clone dimensions differ")
	}
	if !clone.Cell(0, 3).HasBlocker() {
		t.Error("clone lost the blocker")
	}
	if id, ok := clone.Cell(0, 0).Occupant(); !ok || id != "A1" {
		t.Error("clone lost the occupant")
	}
	if clone.SeatByLabel("A1") != clone.Cell(4, 1) {
		t.Error("clone seat index points outside the clone")
	}

	clone.Cell(0, 0).ClearOccupant()
	clone.Cell(5, 3).SetOccupant("B1")

	if _, ok := g.Cell(0, 0).Occupant(); !ok {
		t.Error("clearing the clone affected the original")
	}
	if g.Cell(5, 3).Blocked() {
		t.Error("occupying the clone affected the original")
	}
}

func TestSeatMapLabelsSorted(t *testing.T) {
	labels := cinemaSeats().Labels()
	expected := []string{"A1", "A2", "A3", "A4", "B1", "B2", "B3", "B4"}
	if len(labels) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, labels)
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, labels)
		}
	}
}

func TestParsePos(t *testing.T) {
	testCases := []struct {
		input    string
		expected core.Pos
		wantErr  bool
	}{
		{"0,0", core.P(0, 0), false},
		{"4,1", core.P(4, 1), false},
		{" 12 , 3 ", core.P(12, 3), false},
		{"4", core.Pos{}, true},
		{"a,1", core.Pos{}, true},
		{"1,b", core.Pos{}, true},
		{"1,2,3", core.Pos{}, true},
	}

	for _, tc := range testCases {
		got, err := core.ParsePos(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePos(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePos(%q): unexpected error %v", tc.input, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePos(%q): expected %v, got %v", tc.input, tc.expected, got)
		}
		if got.String() != core.P(got.Row, got.Col).String() {
			t.Errorf("ParsePos(%q): String round trip failed", tc.input)
		}
	}
}

func TestDirections(t *testing.T) {
	testCases := []struct {
		dir      core.Dir
		dRow     int
		dCol     int
		vertical bool
	}{
		{core.DirRight, 0, 1, false},
		{core.DirLeft, 0, -1, false},
		{core.DirDown, 1, 0, true},
		{core.DirUp, -1, 0, true},
	}

	dirs := core.Directions()
	if len(dirs) != len(testCases) {
		t.Fatalf("expected %d directions, got %d", len(testCases), len(dirs))
	}
	for i, tc := range testCases {
		if dirs[i] != tc.dir {
			t.Errorf("direction %d: expected %v, got %v", i, tc.dir, dirs[i])
		}
		dRow, dCol := tc.dir.Delta()
		if dRow != tc.dRow || dCol != tc.dCol {
			t.Errorf("%v: expected delta (%d,%d), got (%d,%d)", tc.dir, tc.dRow, tc.dCol, dRow, dCol)
		}
		if tc.dir.Vertical() != tc.vertical {
			t.Errorf("%v: expected vertical=%v", tc.dir, tc.vertical)
		}
		if core.P(2, 2).Step(tc.dir) != core.P(2+tc.dRow, 2+tc.dCol) {
			t.Errorf("%v: Step moved to the wrong cell", tc.dir)
		}
	}
}
