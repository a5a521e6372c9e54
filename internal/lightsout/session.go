package lightsout

import "math/rand"

// Session is one puzzle attempt: the difficulty, the current board, and the
// move count. It is a value; every transition returns a new Session and
// leaves the receiver untouched.
type Session struct {
	Difficulty Difficulty
	Board      Board
	Moves      int
	Cleared    bool
}

// NewPuzzle scrambles a fresh board for the given difficulty.
func NewPuzzle(rng *rand.Rand, diff Difficulty) (Session, error) {
	b, err := Scramble(rng, diff.Size, diff.Steps)
	if err != nil {
		return Session{}, err
	}
	return Session{
		Difficulty: diff,
		Board:      b,
		Cleared:    IsCleared(b),
	}, nil
}

// ApplyMove presses the switch at (row, col) and returns the next session
// state. Moves on an already-cleared board are ignored.
func (s Session) ApplyMove(row, col int) (Session, error) {
	if s.Cleared {
		return s, nil
	}

	next, err := Toggle(s.Board, s.Difficulty.Size, row, col)
	if err != nil {
		return Session{}, err
	}

	return Session{
		Difficulty: s.Difficulty,
		Board:      next,
		Moves:      s.Moves + 1,
		Cleared:    IsCleared(next),
	}, nil
}

// Reset scrambles a new board at the session's difficulty, dropping the
// current board and move count.
func (s Session) Reset(rng *rand.Rand) (Session, error) {
	return NewPuzzle(rng, s.Difficulty)
}
