package core

import (
	"errors"
	"math/rand"
)

// ScrambleParams configures Scramble.
type ScrambleParams struct {
	Moves       int   // Random moves applied to the solved layout
	Slack       int   // Extra moves granted on top of Moves
	Seed        int64 // RNG seed for deterministic variety
	MaxAttempts int   // Cap on robot picks that lead nowhere
}

// DefaultScrambleParams returns sensible defaults for scrambling.
func DefaultScrambleParams() ScrambleParams {
	return ScrambleParams{
		Moves:       6,
		Slack:       3,
		MaxAttempts: 200,
	}
}

// ErrStuck is returned when no robot in the layout can move at all.
var ErrStuck = errors.New("no robot can move")

// Scramble seats every robot of layout, then walks random legal moves away
// from the solution. Every move can be walked back, so the result is
// solvable in at most the number of moves applied; MoveLimit is set to that
// count plus params.Slack.
func Scramble(layout Scenario, params ScrambleParams) (Scenario, error) {
	b, err := NewBoard(layout.Solved())
	if err != nil {
		return Scenario{}, err
	}
	if params.MaxAttempts <= 0 {
		params.MaxAttempts = DefaultScrambleParams().MaxAttempts
	}

	labels := layout.Seats.Labels()
	if len(labels) == 0 {
		return Scenario{}, ErrStuck
	}
	rng := rand.New(rand.NewSource(params.Seed))
	applied := 0
	lastMoved := ""

	for attempts := 0; attempts < params.MaxAttempts; attempts++ {
		if applied >= params.Moves && !b.Solved() {
			break
		}

		label := labels[rng.Intn(len(labels))]
		if label == lastMoved && len(labels) > 1 {
			continue
		}
		from := robotPos(b, label)
		dests := b.Destinations(from)
		if len(dests) == 0 {
			continue
		}
		to := dests[rng.Intn(len(dests))].Key()
		if _, err := b.Move(from, to); err != nil {
			return Scenario{}, err
		}
		applied++
		lastMoved = label
	}

	if applied == 0 {
		return Scenario{}, ErrStuck
	}

	out := layout.clone()
	out.Robots = b.Placements()
	out.MoveLimit = applied + params.Slack
	return out, nil
}

// robotPos returns where the robot for label currently stands.
func robotPos(b *Board, label string) Pos {
	for _, p := range b.Placements() {
		if p.Label == label {
			return p.At
		}
	}
	return Pos{Row: -1, Col: -1}
}
