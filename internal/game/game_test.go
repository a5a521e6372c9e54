package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-lightsout/internal/core"
	"github.com/vovakirdan/tui-lightsout/internal/lightsout"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     seed,
	}
}

func testDifficulty() lightsout.Difficulty {
	return lightsout.Difficulty{ID: "easy", Label: "Easy", Size: 3, Steps: 6}
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// newUncleared returns a game whose board has at least one lit cell,
// requesting new scrambles if needed.
func newUncleared(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(testDifficulty())
	g.Reset(testConfig(seed))
	for i := 0; i < 10 && g.Snapshot().State == StateCleared; i++ {
		step(g, core.ActionNew)
	}
	if g.Snapshot().State == StateCleared {
		t.Fatal("could not obtain an uncleared scramble")
	}
	return g
}

// moveCursorTo walks the cursor to (row, col) one step per tick.
func moveCursorTo(g *Game, row, col int) {
	for g.cursorRow < row {
		step(g, core.ActionDown)
	}
	for g.cursorRow > row {
		step(g, core.ActionUp)
	}
	for g.cursorCol < col {
		step(g, core.ActionRight)
	}
	for g.cursorCol > col {
		step(g, core.ActionLeft)
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(testDifficulty())
	a.Reset(testConfig(42))

	b := New(testDifficulty())
	b.Reset(testConfig(42))

	snapA := a.Snapshot()
	snapB := b.Snapshot()

	if len(snapA.Board) != len(snapB.Board) {
		t.Fatal("board lengths differ")
	}
	for i := range snapA.Board {
		if snapA.Board[i] != snapB.Board[i] {
			t.Fatal("same seed should produce the same scramble")
		}
	}
	if snapA.Moves != 0 {
		t.Errorf("fresh game has %d moves, expected 0", snapA.Moves)
	}
}

func TestCursorMovementClamped(t *testing.T) {
	g := New(testDifficulty())
	g.Reset(testConfig(1))

	// Cursor starts at origin; moving past the edges must clamp.
	step(g, core.ActionUp)
	step(g, core.ActionLeft)
	if snap := g.Snapshot(); snap.Cursor != [2]int{0, 0} {
		t.Errorf("cursor = %v, expected clamped to (0, 0)", snap.Cursor)
	}

	for i := 0; i < 10; i++ {
		step(g, core.ActionDown)
		step(g, core.ActionRight)
	}
	if snap := g.Snapshot(); snap.Cursor != [2]int{2, 2} {
		t.Errorf("cursor = %v, expected clamped to (2, 2)", snap.Cursor)
	}
}

func TestToggleCountsMovesAndFlipsBoard(t *testing.T) {
	g := newUncleared(t, 7)

	before := g.Snapshot().Board
	moveCursorTo(g, 1, 1)

	result := step(g, core.ActionToggle)

	if result.State.Moves != 1 {
		t.Errorf("moves = %d, expected 1", result.State.Moves)
	}

	expected, err := lightsout.Toggle(lightsout.Board(before), 3, 1, 1)
	if err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}
	after := g.Snapshot().Board
	for i := range after {
		if after[i] != expected[i] {
			t.Fatal("pressing a switch must flip exactly its neighbor group")
		}
	}
}

func TestOneMovePerTick(t *testing.T) {
	g := newUncleared(t, 7)

	// Toggle and movement in the same frame: at most one press is applied.
	result := step(g, core.ActionToggle, core.ActionToggle)
	if result.State.Moves != 1 {
		t.Errorf("moves = %d, expected 1", result.State.Moves)
	}
}

func TestHintOverlayClearsBoard(t *testing.T) {
	g := newUncleared(t, 3)

	step(g, core.ActionHint)
	if !g.Snapshot().HintActive {
		t.Fatal("hint overlay should be active after ActionHint")
	}

	// Pressing marked switches one by one must eventually clear the board;
	// bound the loop to fail loudly instead of hanging on a defect.
	for i := 0; i < 100; i++ {
		snap := g.Snapshot()
		if snap.State == StateCleared {
			break
		}
		if !snap.HintActive {
			t.Fatal("hint overlay vanished before the board cleared")
		}

		pressed := false
		for idx, mark := range g.hint {
			if !mark {
				continue
			}
			moveCursorTo(g, idx/3, idx%3)
			step(g, core.ActionToggle)
			pressed = true
			break
		}
		if !pressed {
			t.Fatal("active hint with no marked cells on an uncleared board")
		}
	}

	if g.Snapshot().State != StateCleared {
		t.Fatal("following the hint overlay did not clear the board")
	}
}

func TestHintToggleDismisses(t *testing.T) {
	g := New(testDifficulty())
	g.Reset(testConfig(3))

	step(g, core.ActionHint)
	step(g, core.ActionHint)
	if g.Snapshot().HintActive {
		t.Error("second ActionHint should dismiss the overlay")
	}
}

func TestNewPuzzleResetsMoves(t *testing.T) {
	g := New(testDifficulty())
	g.Reset(testConfig(5))

	step(g, core.ActionToggle)
	step(g, core.ActionNew)

	snap := g.Snapshot()
	if snap.Moves != 0 {
		t.Errorf("moves after new puzzle = %d, expected 0", snap.Moves)
	}
	if snap.HintActive {
		t.Error("new puzzle should drop the hint overlay")
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := New(testDifficulty())
	g.Reset(testConfig(5))

	step(g, core.ActionToggle)
	before := g.Snapshot()

	step(g, core.ActionRestart)
	after := g.Snapshot()

	if after.Moves != before.Moves {
		t.Error("ActionRestart must not reset an uncleared board")
	}
}

func TestTooSmallBlocksInput(t *testing.T) {
	g := New(testDifficulty())
	cfg := testConfig(5)
	cfg.ScreenW = 10
	cfg.ScreenH = 5
	g.Reset(cfg)

	snap := g.Snapshot()
	if snap.State != StatePausedSmall {
		t.Fatalf("state = %q, expected %q", snap.State, StatePausedSmall)
	}

	result := step(g, core.ActionToggle)
	if result.State.Moves != 0 {
		t.Error("input must be ignored while the window is too small")
	}
}

func TestBestMovesInHUD(t *testing.T) {
	g := New(testDifficulty())
	g.Reset(testConfig(5))
	g.SetBestMoves(4)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	found := false
	for y := 0; y < screen.Height(); y++ {
		if strings.Contains(screen.Row(y), "Best: 4") {
			found = true
			break
		}
	}
	if !found {
		t.Error("HUD should display the recorded best")
	}
}
