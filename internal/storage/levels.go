package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LevelResult is one finished level attempt.
type LevelResult struct {
	ID        int64
	RunID     string // Groups the levels of one play session
	GameID    string
	LevelID   string
	Moves     int
	MovesLeft int
	Score     int
	Won       bool
	CreatedAt time.Time
}

// NewRunID returns a fresh identifier for a play session.
func NewRunID() string {
	return uuid.NewString()
}

// SaveLevelResult records a level attempt. An empty RunID gets a fresh one.
// Returns the ID of the inserted record.
func (s *Store) SaveLevelResult(r LevelResult) (int64, error) {
	if r.GameID == "" || r.LevelID == "" {
		return 0, fmt.Errorf("storage: level result needs game and level IDs")
	}
	if r.RunID == "" {
		r.RunID = NewRunID()
	}

	res, err := s.db.Exec(
		`INSERT INTO level_results (run_id, game_id, level_id, moves, moves_left, score, won)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.GameID, r.LevelID, r.Moves, r.MovesLeft, r.Score, boolToInt(r.Won),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const levelResultColumns = `id, run_id, game_id, level_id, moves, moves_left, score, won, created_at`

// BestLevelResult returns the best won attempt of a level: highest score,
// then fewest moves. Returns nil when the level was never cleared.
func (s *Store) BestLevelResult(gameID, levelID string) (*LevelResult, error) {
	row := s.db.QueryRow(
		`SELECT `+levelResultColumns+`
		 FROM level_results
		 WHERE game_id = ? AND level_id = ? AND won = 1
		 ORDER BY score DESC, moves ASC, id ASC
		 LIMIT 1`,
		gameID, levelID,
	)

	r, err := scanLevelResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best level result: %w", err)
	}
	return &r, nil
}

// LevelResults returns the most recent attempts for a game, newest first.
func (s *Store) LevelResults(gameID string, limit int) ([]LevelResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+levelResultColumns+`
		 FROM level_results
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level results: %w", err)
	}
	return scanLevelResults(rows)
}

// RunResults returns every attempt recorded under one run, in play order.
func (s *Store) RunResults(runID string) ([]LevelResult, error) {
	rows, err := s.db.Query(
		`SELECT `+levelResultColumns+`
		 FROM level_results
		 WHERE run_id = ?
		 ORDER BY id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run results: %w", err)
	}
	return scanLevelResults(rows)
}

// ClearedLevels returns the IDs of every level won at least once.
func (s *Store) ClearedLevels(gameID string) (map[string]bool, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT level_id FROM level_results WHERE game_id = ? AND won = 1`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query cleared levels: %w", err)
	}
	defer rows.Close()

	cleared := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		cleared[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return cleared, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLevelResult(row rowScanner) (LevelResult, error) {
	var r LevelResult
	var won int
	var createdAt any
	err := row.Scan(&r.ID, &r.RunID, &r.GameID, &r.LevelID, &r.Moves, &r.MovesLeft, &r.Score, &won, &createdAt)
	if err != nil {
		return LevelResult{}, err
	}
	r.Won = won != 0
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func scanLevelResults(rows *sql.Rows) ([]LevelResult, error) {
	defer rows.Close()

	var results []LevelResult
	for rows.Next() {
		r, err := scanLevelResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
