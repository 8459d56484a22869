package storage

import (
	"testing"

	"github.com/google/uuid"
)

func TestSaveLevelResultAssignsRunID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveLevelResult(LevelResult{GameID: "seatjam", LevelID: "03_cinema", Moves: 7, Won: true}); err != nil {
		t.Fatalf("SaveLevelResult() failed: %v", err)
	}

	results, err := store.LevelResults("seatjam", 10)
	if err != nil {
		t.Fatalf("LevelResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if _, err := uuid.Parse(results[0].RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", results[0].RunID, err)
	}
	if !results[0].Won || results[0].Moves != 7 || results[0].CreatedAt.IsZero() {
		t.Errorf("result = %+v", results[0])
	}
}

func TestSaveLevelResultRequiresIDs(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveLevelResult(LevelResult{LevelID: "x"}); err == nil {
		t.Error("missing game ID should fail")
	}
	if _, err := store.SaveLevelResult(LevelResult{GameID: "seatjam"}); err == nil {
		t.Error("missing level ID should fail")
	}
}

func TestBestLevelResult(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestLevelResult("seatjam", "02_swap")
	if err != nil {
		t.Fatalf("BestLevelResult() failed: %v", err)
	}
	if best != nil {
		t.Fatalf("Expected nil for an uncleared level, got %+v", best)
	}

	run := NewRunID()
	attempts := []LevelResult{
		{RunID: run, GameID: "seatjam", LevelID: "02_swap", Moves: 5, Score: 999, Won: false},
		{RunID: run, GameID: "seatjam", LevelID: "02_swap", Moves: 5, Score: 100, Won: true},
		{RunID: run, GameID: "seatjam", LevelID: "02_swap", Moves: 4, Score: 125, Won: true},
		{RunID: run, GameID: "seatjam", LevelID: "02_swap", Moves: 3, Score: 125, Won: true},
		{RunID: run, GameID: "seatjam_shuffle", LevelID: "02_swap", Moves: 1, Score: 500, Won: true},
	}
	for _, a := range attempts {
		if _, err := store.SaveLevelResult(a); err != nil {
			t.Fatalf("SaveLevelResult() failed: %v", err)
		}
	}

	best, err = store.BestLevelResult("seatjam", "02_swap")
	if err != nil {
		t.Fatalf("BestLevelResult() failed: %v", err)
	}
	if best == nil {
		t.Fatal("Expected a best result")
	}
	if best.Score != 125 || best.Moves != 3 || !best.Won {
		t.Errorf("best = %+v, expected the 3-move 125-point win", best)
	}
}

func TestLevelResultsOrderAndRuns(t *testing.T) {
	store := openTestStore(t)

	runA, runB := NewRunID(), NewRunID()
	if runA == runB {
		t.Fatal("run IDs should be unique")
	}

	store.SaveLevelResult(LevelResult{RunID: runA, GameID: "seatjam", LevelID: "01_warmup", Won: true})
	store.SaveLevelResult(LevelResult{RunID: runA, GameID: "seatjam", LevelID: "02_swap", Won: false})
	store.SaveLevelResult(LevelResult{RunID: runB, GameID: "seatjam", LevelID: "01_warmup", Won: true})

	recent, err := store.LevelResults("seatjam", 2)
	if err != nil {
		t.Fatalf("LevelResults() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].RunID != runB || recent[1].LevelID != "02_swap" {
		t.Errorf("recent results out of order: %+v", recent)
	}

	runResults, err := store.RunResults(runA)
	if err != nil {
		t.Fatalf("RunResults() failed: %v", err)
	}
	if len(runResults) != 2 || runResults[0].LevelID != "01_warmup" || runResults[1].LevelID != "02_swap" {
		t.Errorf("run results = %+v", runResults)
	}

	cleared, err := store.ClearedLevels("seatjam")
	if err != nil {
		t.Fatalf("ClearedLevels() failed: %v", err)
	}
	if !cleared["01_warmup"] || cleared["02_swap"] || len(cleared) != 1 {
		t.Errorf("cleared = %v", cleared)
	}
}
