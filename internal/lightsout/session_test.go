package lightsout

import (
	"math/rand"
	"testing"
)

func TestNewPuzzle(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	diff := Difficulty{ID: "test", Label: "Test", Size: 4, Steps: 8}

	s, err := NewPuzzle(rng, diff)
	if err != nil {
		t.Fatalf("NewPuzzle() failed: %v", err)
	}

	if len(s.Board) != 16 {
		t.Errorf("board length = %d, expected 16", len(s.Board))
	}
	if s.Moves != 0 {
		t.Errorf("fresh puzzle has %d moves, expected 0", s.Moves)
	}
	if s.Difficulty != diff {
		t.Errorf("session difficulty = %+v, expected %+v", s.Difficulty, diff)
	}
}

func TestApplyMoveCountsAndDetectsClear(t *testing.T) {
	diff := Difficulty{ID: "tiny", Label: "Tiny", Size: 3, Steps: 0}
	s, err := NewPuzzle(rand.New(rand.NewSource(1)), diff)
	if err != nil {
		t.Fatalf("NewPuzzle() failed: %v", err)
	}
	if !s.Cleared {
		t.Fatal("zero-step puzzle should start cleared")
	}

	// Un-clear it by replaying a known move, then solve it back by hand.
	s.Cleared = false
	s, err = s.ApplyMove(1, 1)
	if err != nil {
		t.Fatalf("ApplyMove() failed: %v", err)
	}
	if s.Moves != 1 {
		t.Errorf("moves = %d, expected 1", s.Moves)
	}
	if s.Cleared {
		t.Error("board with lit cells reported as cleared")
	}

	// Pressing the same switch undoes it: back to all-off.
	s, err = s.ApplyMove(1, 1)
	if err != nil {
		t.Fatalf("ApplyMove() failed: %v", err)
	}
	if !s.Cleared {
		t.Error("undoing the only move should clear the board")
	}
	if s.Moves != 2 {
		t.Errorf("moves = %d, expected 2", s.Moves)
	}
}

func TestApplyMoveIgnoredWhenCleared(t *testing.T) {
	diff := Difficulty{ID: "tiny", Label: "Tiny", Size: 3, Steps: 0}
	s, err := NewPuzzle(rand.New(rand.NewSource(1)), diff)
	if err != nil {
		t.Fatalf("NewPuzzle() failed: %v", err)
	}

	after, err := s.ApplyMove(0, 0)
	if err != nil {
		t.Fatalf("ApplyMove() failed: %v", err)
	}
	if after.Moves != 0 || !after.Cleared {
		t.Error("moves on a cleared board should be ignored")
	}
}

func TestApplyMoveDoesNotMutateReceiver(t *testing.T) {
	diff := Difficulty{ID: "test", Label: "Test", Size: 4, Steps: 8}
	s, err := NewPuzzle(rand.New(rand.NewSource(3)), diff)
	if err != nil {
		t.Fatalf("NewPuzzle() failed: %v", err)
	}
	before := s.Board.Clone()

	if _, err := s.ApplyMove(2, 2); err != nil {
		t.Fatalf("ApplyMove() failed: %v", err)
	}

	if !boardEqual(s.Board, before) {
		t.Error("ApplyMove mutated the receiver's board")
	}
	if s.Moves != 0 {
		t.Error("ApplyMove mutated the receiver's move count")
	}
}

func TestSessionReset(t *testing.T) {
	diff := Difficulty{ID: "test", Label: "Test", Size: 5, Steps: 15}
	rng := rand.New(rand.NewSource(8))

	s, err := NewPuzzle(rng, diff)
	if err != nil {
		t.Fatalf("NewPuzzle() failed: %v", err)
	}
	s, err = s.ApplyMove(0, 0)
	if err != nil {
		t.Fatalf("ApplyMove() failed: %v", err)
	}

	fresh, err := s.Reset(rng)
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if fresh.Moves != 0 {
		t.Errorf("reset session has %d moves, expected 0", fresh.Moves)
	}
	if fresh.Difficulty != diff {
		t.Error("Reset should keep the difficulty")
	}
}

func TestLookup(t *testing.T) {
	catalog := DefaultCatalog()

	d, ok := Lookup(catalog, "normal")
	if !ok {
		t.Fatal("Lookup(normal) not found in default catalog")
	}
	if d.Size <= 0 || d.Steps < 0 {
		t.Errorf("default difficulty has bad values: %+v", d)
	}

	if _, ok := Lookup(catalog, "nightmare"); ok {
		t.Error("Lookup should miss on unknown id")
	}
}
