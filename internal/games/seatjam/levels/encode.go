package levels

import (
	"github.com/vovakirdan/seatjam/internal/games/seatjam/core"
	"github.com/vovakirdan/seatjam/internal/games/seatjam/levels/formats"
)

// EncodeYAML writes a scenario in the level file format.
func EncodeYAML(s core.Scenario, metadata map[string]string) ([]byte, error) {
	return formats.MarshalYAML(formats.Level{
		ID:       s.ID,
		Name:     s.Name,
		Rows:     s.Rows,
		Cols:     s.Cols,
		Seats:    s.Seats,
		Blockers: s.Blockers,
		Robots:   s.Robots,
		Moves:    s.MoveLimit,
		Metadata: metadata,
	})
}
