// Package game wires the lights-out core into the platform game contract:
// cursor movement, switch presses, the solver hint overlay, and win handling.
// It contains no terminal code; the platform owns input mapping and display.
package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-lightsout/internal/core"
	"github.com/vovakirdan/tui-lightsout/internal/lightsout"
)

// Game implements an interactive lights-out session at a fixed difficulty.
type Game struct {
	diff    lightsout.Difficulty
	session lightsout.Session
	rng     *rand.Rand
	tick    uint64

	cursorRow int
	cursorCol int

	screenW  int
	screenH  int
	tooSmall bool

	hint       lightsout.Solution // Non-nil while the hint overlay is shown
	unsolvable bool               // Solver reported no clearing press-set
	bestMoves  int                // Best recorded result, 0 if none

	moveProcessed bool // Prevent multiple presses per tick
}

// New creates a game for the given difficulty.
func New(diff lightsout.Difficulty) *Game {
	return &Game{diff: diff}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "lightsout"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Lights Out"
}

// Difficulty returns the difficulty this game was created with.
func (g *Game) Difficulty() lightsout.Difficulty {
	return g.diff
}

// SetBestMoves tells the game the best recorded move count for its
// difficulty, for HUD display. 0 means no result recorded yet.
func (g *Game) SetBestMoves(moves int) {
	g.bestMoves = moves
}

// Reset initializes or restarts the game with a fresh scramble.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cursorRow = 0
	g.cursorCol = 0
	g.hint = nil
	g.unsolvable = false
	g.moveProcessed = false

	sess, err := lightsout.NewPuzzle(g.rng, g.diff)
	if err != nil {
		// Difficulty values are validated at config load time.
		panic(err)
	}
	g.session = sess

	g.checkScreenSize()
}

// Resize updates the screen dimensions without touching the puzzle state.
// Play pauses automatically while the window is too small for the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW := g.diff.Size*cellWidth + 1 + 2
	if minW < 44 {
		minW = 44
	}
	minH := g.diff.Size*cellHeight + 1 + hudHeight + 3
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// A new scramble is always available; after a clear it is also bound
	// to the restart key.
	if in.Has(core.ActionNew) || (in.Has(core.ActionRestart) && g.session.Cleared) {
		g.newPuzzle()
		return core.StepResult{State: g.State()}
	}

	g.handleCursor(in)

	if in.Has(core.ActionHint) {
		g.toggleHint()
	}

	if in.Has(core.ActionToggle) && !g.session.Cleared && !g.moveProcessed {
		g.pressSwitch()
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// handleCursor moves the cursor, clamped to the grid.
func (g *Game) handleCursor(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.cursorRow--
	}
	if in.Has(core.ActionDown) {
		g.cursorRow++
	}
	if in.Has(core.ActionLeft) {
		g.cursorCol--
	}
	if in.Has(core.ActionRight) {
		g.cursorCol++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, g.diff.Size-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, g.diff.Size-1)
}

// pressSwitch applies the move under the cursor.
func (g *Game) pressSwitch() {
	sess, err := g.session.ApplyMove(g.cursorRow, g.cursorCol)
	if err != nil {
		// Cursor is clamped to the grid, so the preconditions hold.
		panic(err)
	}
	g.session = sess

	// The board changed; recompute the overlay so it stays a valid
	// clearing pattern for the new state.
	if g.hint != nil {
		g.hint = nil
		g.toggleHint()
	}
	if g.session.Cleared {
		g.hint = nil
		g.unsolvable = false
	}
}

// toggleHint shows or dismisses the solver overlay.
func (g *Game) toggleHint() {
	if g.hint != nil || g.unsolvable {
		g.hint = nil
		g.unsolvable = false
		return
	}
	if g.session.Cleared {
		return
	}

	sol, ok, err := lightsout.Solve(g.session.Board, g.diff.Size)
	if err != nil {
		panic(err)
	}
	if !ok {
		g.unsolvable = true
		return
	}
	g.hint = sol
}

// newPuzzle scrambles a fresh board at the same difficulty.
func (g *Game) newPuzzle() {
	sess, err := g.session.Reset(g.rng)
	if err != nil {
		panic(err)
	}
	g.session = sess
	g.hint = nil
	g.unsolvable = false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:   g.session.Moves,
		Cleared: g.session.Cleared,
	}
}

// isNewBest reports whether the current clear beats the recorded best.
func (g *Game) isNewBest() bool {
	return g.session.Cleared && (g.bestMoves == 0 || g.session.Moves < g.bestMoves)
}

// hintAt reports whether the hint overlay marks the given cell.
func (g *Game) hintAt(row, col int) bool {
	if g.hint == nil {
		return false
	}
	return g.hint[row*g.diff.Size+col]
}
