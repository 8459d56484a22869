// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/seatjam/internal/games/seatjam/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Seats    map[string][]int  `yaml:"seats"`
	Blockers [][]int           `yaml:"blockers,omitempty"`
	Robots   []YAMLRobot       `yaml:"robots"`
	Moves    int               `yaml:"moves,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// YAMLRobot places the robot for a seat label at a [row, col] position.
type YAMLRobot struct {
	Label string `yaml:"label"`
	At    []int  `yaml:"at"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Seats    core.SeatMap
	Blockers []core.Pos
	Robots   []core.Placement
	Moves    int
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
// Only the file structure is checked here; puzzle rules are checked by
// core.ValidateScenario.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("missing id")
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     yl.Size.Rows,
		Cols:     yl.Size.Cols,
		Seats:    make(core.SeatMap, len(yl.Seats)),
		Moves:    yl.Moves,
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	for label, at := range yl.Seats {
		pos, err := toPos(at)
		if err != nil {
			return Level{}, fmt.Errorf("seat %s: %w", label, err)
		}
		level.Seats[label] = pos
	}

	for i, at := range yl.Blockers {
		pos, err := toPos(at)
		if err != nil {
			return Level{}, fmt.Errorf("blocker %d: %w", i, err)
		}
		level.Blockers = append(level.Blockers, pos)
	}

	for i, r := range yl.Robots {
		if r.Label == "" {
			return Level{}, fmt.Errorf("robot %d: missing label", i)
		}
		pos, err := toPos(r.At)
		if err != nil {
			return Level{}, fmt.Errorf("robot %s: %w", r.Label, err)
		}
		level.Robots = append(level.Robots, core.Placement{Label: r.Label, At: pos})
	}

	return level, nil
}

// MarshalYAML converts a level back to its file form.
func MarshalYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Size:     YAMLSize{Rows: l.Rows, Cols: l.Cols},
		Seats:    make(map[string][]int, len(l.Seats)),
		Moves:    l.Moves,
		Metadata: l.Metadata,
	}
	for label, pos := range l.Seats {
		yl.Seats[label] = []int{pos.Row, pos.Col}
	}
	for _, b := range l.Blockers {
		yl.Blockers = append(yl.Blockers, []int{b.Row, b.Col})
	}
	for _, r := range l.Robots {
		yl.Robots = append(yl.Robots, YAMLRobot{Label: r.Label, At: []int{r.At.Row, r.At.Col}})
	}
	return yaml.Marshal(yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// toPos converts a [row, col] pair.
func toPos(v []int) (core.Pos, error) {
	if len(v) != 2 {
		return core.Pos{}, fmt.Errorf("want [row, col], got %v", v)
	}
	return core.P(v[0], v[1]), nil
}
