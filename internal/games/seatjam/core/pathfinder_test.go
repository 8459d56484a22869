package core_test

import (
	"testing"

	"github.com/vovakirdan/seatjam/internal/games/seatjam/core"
)

func TestFindShortestPathStraightColumn(t *testing.T) {
	g := mustGrid(t, 6, 4, cinemaSeats())
	pf := core.NewPathFinder(g)

	path := pf.FindShortestPath(g.Cell(0, 0), g.Cell(5, 0))

	assertPositions(t, path.Positions(), []core.Pos{
		core.P(0, 0), core.P(1, 0), core.P(2, 0), core.P(3, 0), core.P(4, 0), core.P(5, 0),
	})
}

func TestFindShortestPathEntersSeatSideways(t *testing.T) {
	g := mustGrid(t, 6, 4, cinemaSeats())
	pf := core.NewPathFinder(g)

	path := pf.FindShortestPath(g.Cell(0, 0), g.Cell(4, 1))

	assertPositions(t, path.Positions(), []core.Pos{
		core.P(0, 0), core.P(1, 0), core.P(2, 0), core.P(3, 0), core.P(4, 0), core.P(4, 1),
	})
	if prev := path[len(path)-2]; prev.Row() != 4 {
		t.Errorf("seat must be entered horizontally, entered from %v", prev)
	}
}

func TestFindShortestPathBarrier(t *testing.T) {
	g := mustGrid(t, 6, 4, cinemaSeats())
	pf := core.NewPathFinder(g)
	for col := 0; col < 4; col++ {
		g.Cell(1, col).SetOccupant(core.OccupantID("wall"))
	}

	if path := pf.FindShortestPath(g.Cell(0, 0), g.Cell(5, 3)); path != nil {
		t.Errorf("expected nil path through a full barrier, got %v", path.Positions())
	}
}

func TestFindShortestPathBlockedRow(t *testing.T) {
	g := mustGrid(t, 6, 4, core.SeatMap{"A1": core.P(4, 1), "A2": core.P(3, 1)})
	pf := core.NewPathFinder(g)
	for col := 0; col < 4; col++ {
		g.SetBlocker(1, col)
	}

	if path := pf.FindShortestPath(g.Cell(0, 0), g.Cell(5, 0)); path != nil {
		t.Errorf("expected nil path across a blocked row, got %v", path.Positions())
	}
	if path := pf.FindShortestPath(g.Cell(0, 0), g.Cell(0, 3)); path.Steps() != 3 {
		t.Errorf("row above the barrier should stay open, got %v", path.Positions())
	}
}

func TestFindShortestPathSameCell(t *testing.T) {
	g := mustGrid(t, 6, 4, cinemaSeats())
	pf := core.NewPathFinder(g)

	for _, pos := range []core.Pos{core.P(2, 2), core.P(0, 3)} {
		cell := g.At(pos)
		path := pf.FindShortestPath(cell, cell)
		if len(path) != 1 || path[0] != cell {
			t.Errorf("%v: expected single-cell path, got %v", pos, path.Positions())
		}
	}
}

func TestFindShortestPathOccupiedEnd(t *testing.T) {
	g := mustGrid(t, 3, 3, nil)
	pf := core.NewPathFinder(g)
	g.Cell(2, 2).SetOccupant("r1")

	if path := pf.FindShortestPath(g.Cell(0, 0), g.Cell(2, 2)); path != nil {
		t.Errorf("occupied end should be unreachable, got %v", path.Positions())
	}
}

func TestFindShortestPathOccupiedStart(t *testing.T) {
	g := mustGrid(t, 3, 3, nil)
	pf := core.NewPathFinder(g)
	g.Cell(0, 0).SetOccupant("r1")

	path := pf.FindShortestPath(g.Cell(0, 0), g.Cell(0, 2))
	if path.Steps() != 2 {
		t.Errorf("a robot should be able to leave its own cell, got %v", path.Positions())
	}
}

func TestFindShortestPathForeignCells(t *testing.T) {
	g := mustGrid(t, 3, 3, nil)
	other := mustGrid(t, 3, 3, nil)
	pf := core.NewPathFinder(g)

	if pf.FindShortestPath(nil, g.Cell(0, 0)) != nil {
		t.Error("nil start should yield nil")
	}
	if pf.FindShortestPath(g.Cell(0, 0), nil) != nil {
		t.Error("nil end should yield nil")
	}
	if pf.FindShortestPath(other.Cell(0, 0), g.Cell(1, 1)) != nil {
		t.Error("foreign start should yield nil")
	}
}

func TestSeatRowNeedsSideEntry(t *testing.T) {
	// A seat row spanning the full width cannot be crossed vertically
	seats := core.SeatMap{"A": core.P(1, 0), "B": core.P(1, 1), "C": core.P(1, 2)}
	g := mustGrid(t, 3, 3, seats)
	pf := core.NewPathFinder(g)

	if path := pf.FindShortestPath(g.Cell(0, 1), g.Cell(2, 1)); path != nil {
		t.Errorf("expected no way across a seat row, got %v", path.Positions())
	}
	if path := pf.FindShortestPath(g.Cell(0, 1), g.Cell(1, 1)); path != nil {
		t.Errorf("expected no vertical entry into seat, got %v", path.Positions())
	}
}

func TestPathsAreValidAndShortest(t *testing.T) {
	g := mustGrid(t, 6, 4, cinemaSeats())
	g.SetBlocker(0, 2)
	g.Cell(3, 0).SetOccupant("A2")
	g.Cell(2, 3).SetOccupant("A4")
	pf := core.NewPathFinder(g)

	cells := g.Cells()
	for _, start := range cells {
		if start.HasBlocker() {
			continue
		}
		dist := referenceDistances(g, start)
		for _, end := range cells {
			path := pf.FindShortestPath(start, end)
			want, reachable := dist[end.Key()]
			if start == end {
				reachable, want = true, 0
			}

			if !reachable {
				if path != nil {
					t.Errorf("%v -> %v: expected nil, got %v", start, end, path.Positions())
				}
				continue
			}
			if path == nil {
				t.Errorf("%v -> %v: expected a path of %d steps, got nil", start, end, want)
				continue
			}
			if path.Start() != start || path.End() != end {
				t.Errorf("%v -> %v: wrong endpoints %v", start, end, path.Positions())
			}
			if !path.Valid(g) {
				t.Errorf("%v -> %v: invalid path %v", start, end, path.Positions())
			}
			if path.Steps() != want {
				t.Errorf("%v -> %v: expected %d steps, got %d", start, end, want, path.Steps())
			}
		}
	}
}

func TestPathLengthEqualsManhattanWithoutSeats(t *testing.T) {
	g := mustGrid(t, 4, 5, nil)
	pf := core.NewPathFinder(g)

	for _, start := range g.Cells() {
		for _, end := range g.Cells() {
			path := pf.FindShortestPath(start, end)
			if path.Steps() != start.Key().Manhattan(end.Key()) {
				t.Errorf("%v -> %v: expected %d steps, got %d",
					start, end, start.Key().Manhattan(end.Key()), path.Steps())
			}
		}
	}
}

func TestFindShortestPathDeterministic(t *testing.T) {
	g := mustGrid(t, 6, 4, cinemaSeats())
	pf := core.NewPathFinder(g)

	first := pf.FindShortestPath(g.Cell(5, 1), g.Cell(0, 3)).Positions()
	for i := 0; i < 10; i++ {
		again := pf.FindShortestPath(g.Cell(5, 1), g.Cell(0, 3)).Positions()
		assertPositions(t, again, first)
	}
}

func TestReachable(t *testing.T) {
	g := mustGrid(t, 2, 3, core.SeatMap{"A": core.P(1, 1)})
	g.SetBlocker(0, 2)
	pf := core.NewPathFinder(g)

	got := positions(pf.Reachable(g.Cell(0, 0)))
	// BFS order under Right, Left, Down, Up
	assertPositions(t, got, []core.Pos{core.P(0, 0), core.P(0, 1), core.P(1, 0), core.P(1, 1), core.P(1, 2)})

	if pf.Reachable(nil) != nil {
		t.Error("nil start should yield nil")
	}
}

func TestDistance(t *testing.T) {
	g := mustGrid(t, 6, 4, cinemaSeats())
	pf := core.NewPathFinder(g)

	if d, ok := pf.Distance(g.Cell(0, 0), g.Cell(4, 1)); !ok || d != 5 {
		t.Errorf("expected distance 5, got %d (%v)", d, ok)
	}

	g.Cell(4, 0).SetOccupant("x")
	g.Cell(4, 3).SetOccupant("y")
	g.Cell(4, 2).SetOccupant("z")
	if _, ok := pf.Distance(g.Cell(0, 0), g.Cell(4, 1)); ok {
		t.Error("seat with both sides blocked should be unreachable")
	}
}

// referenceDistances computes step counts from start by repeated relaxation
// over the movement rules, independently of the BFS in PathFinder.
func referenceDistances(g *core.Grid, start *core.Cell) map[core.Pos]int {
	dist := map[core.Pos]int{start.Key(): 0}
	for changed := true; changed; {
		changed = false
		for _, from := range g.Cells() {
			d, ok := dist[from.Key()]
			if !ok {
				continue
			}
			for _, dir := range core.Directions() {
				to := g.At(from.Key().Step(dir))
				if to == nil || to.Blocked() {
					continue
				}
				if !core.CanStep(from.Type(), to.Type(), dir.Vertical()) {
					continue
				}
				if cur, seen := dist[to.Key()]; !seen || d+1 < cur {
					dist[to.Key()] = d + 1
					changed = true
				}
			}
		}
	}
	return dist
}
