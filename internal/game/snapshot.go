package game

// StateType represents the current phase of a session.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateCleared     StateType = "cleared"
	StateUnsolvable  StateType = "unsolvable_shown"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	DifficultyID string
	Size         int
	Moves        int
	Board        []bool
	Cursor       [2]int // row, col
	HintActive   bool
	State        StateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.unsolvable:
		state = StateUnsolvable
	case g.session.Cleared:
		state = StateCleared
	}

	board := make([]bool, len(g.session.Board))
	copy(board, g.session.Board)

	return Snapshot{
		Tick:         g.tick,
		DifficultyID: g.diff.ID,
		Size:         g.diff.Size,
		Moves:        g.session.Moves,
		Board:        board,
		Cursor:       [2]int{g.cursorRow, g.cursorCol},
		HintActive:   g.hint != nil,
		State:        state,
	}
}
