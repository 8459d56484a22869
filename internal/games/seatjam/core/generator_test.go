package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/seatjam/internal/games/seatjam/core"
)

func TestScrambleCinema(t *testing.T) {
	params := core.DefaultScrambleParams()
	params.Seed = 42

	s, err := core.Scramble(cinemaScenario(), params)
	require.NoError(t, err)

	require.NoError(t, core.ValidateScenarioStrict(s))
	assert.Len(t, s.Robots, 8)
	assert.GreaterOrEqual(t, s.MoveLimit, params.Moves+params.Slack)
	assert.Equal(t, cinemaScenario().Seats, s.Seats)
	assert.Equal(t, "cinema", s.ID)
}

func TestScrambleDeterministic(t *testing.T) {
	params := core.DefaultScrambleParams()
	params.Seed = 7

	first, err := core.Scramble(cinemaScenario(), params)
	require.NoError(t, err)
	second, err := core.Scramble(cinemaScenario(), params)
	require.NoError(t, err)

	assert.Equal(t, first.Robots, second.Robots)
	assert.Equal(t, first.MoveLimit, second.MoveLimit)
}

func TestScrambleIsSolvableWithinLimit(t *testing.T) {
	layout := core.Scenario{
		ID:    "pair",
		Rows:  2,
		Cols:  3,
		Seats: core.SeatMap{"A": core.P(0, 0), "B": core.P(0, 2)},
	}

	for seed := int64(0); seed < 25; seed++ {
		params := core.ScrambleParams{Moves: 3, Slack: 0, Seed: seed}
		s, err := core.Scramble(layout, params)
		require.NoError(t, err, "seed %d", seed)

		b := mustBoard(t, s)
		require.False(t, b.Solved(), "seed %d", seed)
		assert.True(t, solvableWithin(b, s.MoveLimit), "seed %d: not solvable in %d moves", seed, s.MoveLimit)
	}
}

func TestScrambleStuck(t *testing.T) {
	// A lone robot on a 1x1 seat has nowhere to go
	single := core.Scenario{ID: "single", Rows: 1, Cols: 1, Seats: core.SeatMap{"A": core.P(0, 0)}}
	_, err := core.Scramble(single, core.DefaultScrambleParams())
	assert.ErrorIs(t, err, core.ErrStuck)

	empty := core.Scenario{ID: "empty", Rows: 2, Cols: 2}
	_, err = core.Scramble(empty, core.DefaultScrambleParams())
	assert.ErrorIs(t, err, core.ErrStuck)
}

func TestScrambleInvalidLayout(t *testing.T) {
	layout := core.Scenario{ID: "bad", Rows: 2, Cols: 2, Seats: core.SeatMap{"A": core.P(5, 5)}}
	_, err := core.Scramble(layout, core.DefaultScrambleParams())
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

// solvableWithin searches board states breadth-first for a solution in at
// most limit moves.
func solvableWithin(start *core.Board, limit int) bool {
	type node struct {
		board *core.Board
		depth int
	}
	seen := map[string]bool{stateKey(start): true}
	queue := []node{{start, 0}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.board.Solved() {
			return true
		}
		if n.depth == limit {
			continue
		}
		for _, p := range n.board.Placements() {
			for _, dst := range n.board.Destinations(p.At) {
				next := n.board.Clone()
				if _, err := next.Move(p.At, dst.Key()); err != nil {
					continue
				}
				key := stateKey(next)
				if seen[key] {
					continue
				}
				seen[key] = true
				queue = append(queue, node{next, n.depth + 1})
			}
		}
	}
	return false
}

func stateKey(b *core.Board) string {
	return fmt.Sprint(b.Placements())
}
