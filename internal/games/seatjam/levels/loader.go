// Package levels provides level loading functionality for Seat Jam.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seatjam/internal/games/seatjam/core"
	"github.com/vovakirdan/seatjam/internal/games/seatjam/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete level definition.
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
	FilePath string
}

// Scenario converts the level into a core scenario.
func (l *Level) Scenario() core.Scenario {
	return core.Scenario{
		ID:        l.ID,
		Name:      l.Name,
		Rows:      l.Rows,
		Cols:      l.Cols,
		Seats:     l.Seats,
		Blockers:  l.Blockers,
		Robots:    l.Robots,
		MoveLimit: l.Moves,
	}
}

// NewBoard creates a fresh board for this level.
func (l *Level) NewBoard() (*core.Board, error) {
	return core.NewBoard(l.Scenario())
}

// Difficulty returns the metadata difficulty tag, if any.
func (l *Level) Difficulty() string {
	return l.Metadata["difficulty"]
}

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root   string
	fsys   fs.FS
	logger *log.Logger
}

// NewLoader creates a loader for level files under root on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root), logger: log.Default()}
}

// NewBuiltinLoader creates a loader for the levels compiled into the binary.
func NewBuiltinLoader() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// builtin/ is embedded above, so Sub cannot fail
		panic(err)
	}
	return &Loader{Root: "builtin", fsys: sub, logger: log.Default()}
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(fsys fs.FS, name string) *Loader {
	return &Loader{Root: name, fsys: fsys, logger: log.Default()}
}

// WithLogger sets the logger used to report skipped files.
func (l *Loader) WithLogger(logger *log.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// LoadAll recursively scans and loads all playable level files.
// Invalid files, levels that start solved and duplicate IDs are skipped
// with a warning.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	seen := make(map[string]string)

	err := l.walk(func(p string) {
		level, err := l.loadPlayable(p)
		if err != nil {
			l.logger.Warn("skipping level file", "path", p, "err", err)
			return
		}
		if first, dup := seen[level.ID]; dup {
			l.logger.Warn("skipping duplicate level id", "id", level.ID, "path", p, "first", first)
			return
		}
		seen[level.ID] = p
		levels = append(levels, level)
	})
	if err != nil {
		return nil, err
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	l.logger.Debug("levels loaded", "root", l.Root, "count", len(levels))
	return levels, nil
}

// LoadFile loads and validates a single level file. p is relative to the
// loader's root. A level that starts solved is still accepted.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", p, err)
	}

	level := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Rows:     parsed.Rows,
		Cols:     parsed.Cols,
		Seats:    parsed.Seats,
		Blockers: parsed.Blockers,
		Robots:   parsed.Robots,
		Moves:    parsed.Moves,
		Metadata: parsed.Metadata,
		FilePath: path.Join(l.Root, p),
	}

	if err := core.ValidateScenario(level.Scenario()); err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", p, err)
	}

	return level, nil
}

// loadPlayable is LoadFile that also rejects levels with nothing to solve.
func (l *Loader) loadPlayable(p string) (Level, error) {
	level, err := l.LoadFile(p)
	if err != nil {
		return Level{}, err
	}
	if err := core.ValidateScenarioStrict(level.Scenario()); err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", p, err)
	}
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// FileResult is the outcome of checking one level file.
type FileResult struct {
	Path string
	ID   string
	Err  error
}

// Check loads every level file and reports each one, valid or not, in path
// order. Unlike LoadAll nothing is skipped silently. With strict set, levels
// that start solved are reported as invalid.
func (l *Loader) Check(strict bool) ([]FileResult, error) {
	load := l.LoadFile
	if strict {
		load = l.loadPlayable
	}

	var results []FileResult
	seen := make(map[string]string)

	err := l.walk(func(p string) {
		level, err := load(p)
		res := FileResult{Path: p, ID: level.ID, Err: err}
		if err == nil {
			if first, dup := seen[level.ID]; dup {
				res.Err = fmt.Errorf("levels: duplicate id %s (first in %s)", level.ID, first)
			} else {
				seen[level.ID] = p
			}
		}
		results = append(results, res)
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// walk calls fn for every supported level file in lexical order.
func (l *Loader) walk(fn func(p string)) error {
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}
		fn(p)
		return nil
	})
	if err != nil {
		return fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}
	return nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
