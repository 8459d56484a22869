package core

import (
	"fmt"
	"sort"
)

// Robot is a piece on the board and the seat it belongs on.
type Robot struct {
	ID    OccupantID
	Label string
}

// MoveResult describes a completed move.
type MoveResult struct {
	Robot   Robot
	From    Pos
	To      Pos
	Steps   int
	Seated  bool // destination is a seat
	Correct bool // destination is the robot's own seat
}

// Board tracks robots on a grid. Occupancy only changes through
// CompleteMove, one whole move at a time, so path queries never observe a
// half-finished move.
type Board struct {
	scenario Scenario
	grid     *Grid
	finder   *PathFinder
	robots   map[OccupantID]Robot
}

// NewBoard validates s and sets up its grid with blockers and robots.
func NewBoard(s Scenario) (*Board, error) {
	g, err := buildGrid(s)
	if err != nil {
		return nil, err
	}
	b := &Board{
		scenario: s.clone(),
		grid:     g,
		finder:   NewPathFinder(g),
		robots:   make(map[OccupantID]Robot, len(s.Robots)),
	}
	for _, r := range s.Robots {
		id := OccupantID(r.Label)
		b.robots[id] = Robot{ID: id, Label: r.Label}
	}
	return b, nil
}

// Grid returns the board's grid.
func (b *Board) Grid() *Grid { return b.grid }

// PathFinder returns the path finder bound to the board's grid.
func (b *Board) PathFinder() *PathFinder { return b.finder }

// Scenario returns the scenario the board was built from.
func (b *Board) Scenario() Scenario { return b.scenario.clone() }

// MoveLimit returns the scenario's move budget (0 = unlimited).
func (b *Board) MoveLimit() int { return b.scenario.MoveLimit }

// RobotAt returns the robot standing at p, if any.
func (b *Board) RobotAt(p Pos) (Robot, bool) {
	cell := b.grid.At(p)
	if cell == nil {
		return Robot{}, false
	}
	id, ok := cell.Occupant()
	if !ok {
		return Robot{}, false
	}
	r, ok := b.robots[id]
	return r, ok
}

// Placements returns where every robot currently stands, sorted by label.
func (b *Board) Placements() []Placement {
	out := make([]Placement, 0, len(b.robots))
	for _, cell := range b.grid.cells {
		id, ok := cell.Occupant()
		if !ok {
			continue
		}
		if r, known := b.robots[id]; known {
			out = append(out, Placement{Label: r.Label, At: cell.Key()})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})
	return out
}

// PlanMove finds the path the robot at from would walk to reach to.
// The board is not modified.
func (b *Board) PlanMove(from, to Pos) (Path, error) {
	src := b.grid.At(from)
	if src == nil {
		return nil, fmt.Errorf("%w: source %s", ErrOutOfBounds, from)
	}
	dst := b.grid.At(to)
	if dst == nil {
		return nil, fmt.Errorf("%w: destination %s", ErrOutOfBounds, to)
	}
	if _, ok := b.RobotAt(from); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRobot, from)
	}
	if from == to {
		return nil, fmt.Errorf("%w: %s", ErrSameCell, from)
	}
	if dst.Blocked() {
		return nil, fmt.Errorf("%w: %s", ErrOccupied, to)
	}
	path := b.finder.FindShortestPath(src, dst)
	if path == nil {
		return nil, fmt.Errorf("%w: %s -> %s", ErrUnreachable, from, to)
	}
	return path, nil
}

// CompleteMove applies a planned move: the robot leaves the first cell of p
// and occupies the last. p is checked against the current occupancy first.
func (b *Board) CompleteMove(p Path) (MoveResult, error) {
	if len(p) < 2 || !p.Valid(b.grid) {
		return MoveResult{}, ErrStalePath
	}
	src, dst := p.Start(), p.End()
	id, ok := src.Occupant()
	if !ok {
		return MoveResult{}, fmt.Errorf("%w: %s", ErrNoRobot, src.Key())
	}
	robot, ok := b.robots[id]
	if !ok {
		return MoveResult{}, fmt.Errorf("%w: %s", ErrNoRobot, src.Key())
	}

	dst.SetOccupant(id)
	src.ClearOccupant()

	return MoveResult{
		Robot:   robot,
		From:    src.Key(),
		To:      dst.Key(),
		Steps:   p.Steps(),
		Seated:  dst.IsSeat(),
		Correct: dst.IsSeat() && dst.SeatLabel() == robot.Label,
	}, nil
}

// Move plans and completes a move in one call.
func (b *Board) Move(from, to Pos) (MoveResult, error) {
	path, err := b.PlanMove(from, to)
	if err != nil {
		return MoveResult{}, err
	}
	return b.CompleteMove(path)
}

// Destinations returns every empty cell the robot at from could walk to.
func (b *Board) Destinations(from Pos) []*Cell {
	src := b.grid.At(from)
	if src == nil {
		return nil
	}
	if _, ok := b.RobotAt(from); !ok {
		return nil
	}
	reachable := b.finder.Reachable(src)
	if len(reachable) == 0 {
		return nil
	}
	return reachable[1:]
}

// SeatedCorrectly reports whether p is a seat holding its own robot.
func (b *Board) SeatedCorrectly(p Pos) bool {
	cell := b.grid.At(p)
	if cell == nil || !cell.IsSeat() {
		return false
	}
	r, ok := b.RobotAt(p)
	return ok && r.Label == cell.SeatLabel()
}

// CorrectCount returns how many seats hold their own robot.
func (b *Board) CorrectCount() int {
	count := 0
	for _, seat := range b.grid.Seats() {
		if b.SeatedCorrectly(seat.Key()) {
			count++
		}
	}
	return count
}

// SeatCount returns the number of seats on the board.
func (b *Board) SeatCount() int {
	return len(b.grid.seats)
}

// Solved reports whether every seat holds the robot whose label matches it.
func (b *Board) Solved() bool {
	return b.CorrectCount() == b.SeatCount()
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	g := b.grid.Clone()
	robots := make(map[OccupantID]Robot, len(b.robots))
	for id, r := range b.robots {
		robots[id] = r
	}
	return &Board{
		scenario: b.scenario.clone(),
		grid:     g,
		finder:   NewPathFinder(g),
		robots:   robots,
	}
}
