package core

// Placement puts the robot that belongs on seat Label at position At.
type Placement struct {
	Label string
	At    Pos
}

// Scenario is a complete puzzle: the seat layout, static obstacles, where
// each robot starts, and how many moves the player gets (0 = unlimited).
type Scenario struct {
	ID        string
	Name      string
	Rows      int
	Cols      int
	Seats     SeatMap
	Blockers  []Pos
	Robots    []Placement
	MoveLimit int
}

// Solved returns a copy of the scenario with every robot on its own seat.
func (s Scenario) Solved() Scenario {
	out := s.clone()
	out.Robots = make([]Placement, 0, len(s.Seats))
	for _, label := range s.Seats.Labels() {
		out.Robots = append(out.Robots, Placement{Label: label, At: s.Seats[label]})
	}
	return out
}

func (s Scenario) clone() Scenario {
	out := s
	out.Seats = make(SeatMap, len(s.Seats))
	for label, pos := range s.Seats {
		out.Seats[label] = pos
	}
	out.Blockers = append([]Pos(nil), s.Blockers...)
	out.Robots = append([]Placement(nil), s.Robots...)
	return out
}

// ValidateScenario checks that a scenario can be loaded into a Board:
//   - the grid itself is valid
//   - blockers are in bounds and not on seats
//   - there is exactly one robot per seat label
//   - robots start in bounds, off blockers, on distinct cells
func ValidateScenario(s Scenario) error {
	_, err := buildGrid(s)
	return err
}

// ValidateScenarioStrict is ValidateScenario that also rejects puzzles
// which start out solved.
func ValidateScenarioStrict(s Scenario) error {
	b, err := NewBoard(s)
	if err != nil {
		return err
	}
	if b.Solved() {
		return invalid("ALREADY_SOLVED", "scenario %q starts with every robot seated", s.ID)
	}
	return nil
}

// buildGrid validates s and returns its grid with blockers and robots placed.
func buildGrid(s Scenario) (*Grid, error) {
	g, err := NewGrid(s.Rows, s.Cols, s.Seats)
	if err != nil {
		return nil, err
	}
	if s.MoveLimit < 0 {
		return nil, invalid("BAD_MOVE_LIMIT", "move limit %d is negative", s.MoveLimit)
	}

	for _, b := range s.Blockers {
		cell := g.At(b)
		if cell == nil {
			return nil, invalid("BLOCKER_OUT_OF_BOUNDS", "blocker at %s is outside the grid", b)
		}
		if cell.IsSeat() {
			return nil, invalid("BLOCKER_ON_SEAT", "blocker at %s covers seat %s", b, cell.SeatLabel())
		}
		g.SetBlocker(b.Row, b.Col)
	}

	placed := make(map[string]bool, len(s.Robots))
	for _, r := range s.Robots {
		if g.SeatByLabel(r.Label) == nil {
			return nil, invalid("UNKNOWN_ROBOT", "robot %q has no matching seat", r.Label)
		}
		if placed[r.Label] {
			return nil, invalid("DUPLICATE_ROBOT", "robot %q is placed twice", r.Label)
		}
		cell := g.At(r.At)
		if cell == nil {
			return nil, invalid("ROBOT_OUT_OF_BOUNDS", "robot %s at %s is outside the grid", r.Label, r.At)
		}
		if cell.HasBlocker() {
			return nil, invalid("ROBOT_ON_BLOCKER", "robot %s starts on blocker %s", r.Label, r.At)
		}
		if other, ok := cell.Occupant(); ok {
			return nil, invalid("ROBOT_COLLISION", "robots %s and %s both start at %s", other, r.Label, r.At)
		}
		cell.SetOccupant(OccupantID(r.Label))
		placed[r.Label] = true
	}

	for _, label := range s.Seats.Labels() {
		if !placed[label] {
			return nil, invalid("SEAT_WITHOUT_ROBOT", "seat %s has no robot", label)
		}
	}

	return g, nil
}
