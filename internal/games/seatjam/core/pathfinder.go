package core

// Path is an ordered walk from a start cell to an end cell, both inclusive.
type Path []*Cell

// Start returns the first cell, or nil for an empty path.
func (p Path) Start() *Cell {
	if len(p) == 0 {
		return nil
	}
	return p[0]
}

// End returns the last cell, or nil for an empty path.
func (p Path) End() *Cell {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}

// Steps returns the number of moves along the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Positions returns the positions visited by the path.
func (p Path) Positions() []Pos {
	out := make([]Pos, len(p))
	for i, c := range p {
		out[i] = c.Key()
	}
	return out
}

// Valid reports whether every consecutive pair is a legal step on g under
// its current occupancy.
func (p Path) Valid(g *Grid) bool {
	if len(p) == 0 {
		return false
	}
	for _, c := range p {
		if !g.Contains(c) {
			return false
		}
	}
	for i := 0; i+1 < len(p); i++ {
		if !isNeighbor(p[i], p[i+1], g) {
			return false
		}
	}
	return true
}

func isNeighbor(from, to *Cell, g *Grid) bool {
	for _, n := range from.Neighbors(g) {
		if n == to {
			return true
		}
	}
	return false
}

// PathFinder answers shortest-path queries over one grid. It keeps no state
// between calls, so it is cheap to create per query.
type PathFinder struct {
	grid *Grid
}

// NewPathFinder creates a path finder bound to g.
func NewPathFinder(g *Grid) *PathFinder {
	return &PathFinder{grid: g}
}

// Grid returns the grid the finder queries.
func (pf *PathFinder) Grid() *Grid {
	return pf.grid
}

// FindShortestPath returns a shortest legal path from start to end, or nil
// when end cannot be reached. start == end yields a single-cell path.
// Cells not owned by the finder's grid yield nil.
//
// Among equally short paths the one found first under the canonical
// neighbour order (Right, Left, Down, Up) is returned.
func (pf *PathFinder) FindShortestPath(start, end *Cell) Path {
	if !pf.grid.Contains(start) || !pf.grid.Contains(end) {
		return nil
	}
	target := end.Key()
	if start.Key() == target {
		return Path{start}
	}

	prev := make(map[Pos]*Cell)
	visited := map[Pos]bool{start.Key(): true}
	queue := []*Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range current.Neighbors(pf.grid) {
			key := n.Key()
			if visited[key] {
				continue
			}
			visited[key] = true
			prev[key] = current
			if key == target {
				return reconstructPath(prev, start, n)
			}
			queue = append(queue, n)
		}
	}

	return nil
}

// reconstructPath walks the predecessor links back from end to start.
func reconstructPath(prev map[Pos]*Cell, start, end *Cell) Path {
	var reversed Path
	for c := end; c != start; c = prev[c.Key()] {
		reversed = append(reversed, c)
	}
	reversed = append(reversed, start)

	path := make(Path, len(reversed))
	for i, c := range reversed {
		path[len(reversed)-1-i] = c
	}
	return path
}

// Reachable returns every cell reachable from start, start included, in
// breadth-first order.
func (pf *PathFinder) Reachable(start *Cell) []*Cell {
	if !pf.grid.Contains(start) {
		return nil
	}
	visited := map[Pos]bool{start.Key(): true}
	order := []*Cell{start}
	for i := 0; i < len(order); i++ {
		for _, n := range order[i].Neighbors(pf.grid) {
			if visited[n.Key()] {
				continue
			}
			visited[n.Key()] = true
			order = append(order, n)
		}
	}
	return order
}

// Distance returns the number of steps on a shortest path from start to end.
func (pf *PathFinder) Distance(start, end *Cell) (int, bool) {
	path := pf.FindShortestPath(start, end)
	if path == nil {
		return 0, false
	}
	return path.Steps(), true
}
