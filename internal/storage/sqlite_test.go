package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some results
	for _, moves := range []int{22, 9, 15} {
		if _, err := store.SaveResult("normal", moves); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	// Different difficulty
	if _, err := store.SaveResult("hard", 40); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	// Top results for normal, fewest moves first
	results, err := store.TopResults("normal", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, expected 3", len(results))
	}
	if results[0].Moves != 9 || results[1].Moves != 15 || results[2].Moves != 22 {
		t.Errorf("results not ordered by moves ascending: %v, %v, %v",
			results[0].Moves, results[1].Moves, results[2].Moves)
	}
	if results[0].DifficultyID != "normal" {
		t.Errorf("DifficultyID = %q, expected %q", results[0].DifficultyID, "normal")
	}
}

func TestBestMoves(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No results yet
	best, err := store.BestMoves("easy")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestMoves with no results = %d, expected 0", best)
	}

	store.SaveResult("easy", 12)
	store.SaveResult("easy", 7)
	store.SaveResult("easy", 30)
	store.SaveResult("hard", 3) // Different difficulty must not leak

	best, err = store.BestMoves("easy")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 7 {
		t.Errorf("BestMoves = %d, expected 7", best)
	}
}

func TestTopResultsLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 20; i++ {
		store.SaveResult("easy", 10+i)
	}

	results, err := store.TopResults("easy", 5)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("got %d results, expected 5", len(results))
	}
}

func TestClearResults(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult("easy", 10)
	store.SaveResult("hard", 20)

	if err := store.ClearResults("easy"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, err := store.TopResults("easy", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results after clear, expected 0", len(results))
	}

	// Other difficulties untouched
	hard, err := store.TopResults("hard", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("hard results = %d, expected 1", len(hard))
	}
}

func TestStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty stats
	stats, err := store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Clears != 0 || stats.BestMoves != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveResult("normal", 10)
	store.SaveResult("normal", 20)

	stats, err = store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Clears != 2 {
		t.Errorf("Clears = %d, expected 2", stats.Clears)
	}
	if stats.BestMoves != 10 {
		t.Errorf("BestMoves = %d, expected 10", stats.BestMoves)
	}
	if stats.AvgMoves != 15 {
		t.Errorf("AvgMoves = %f, expected 15", stats.AvgMoves)
	}
}
