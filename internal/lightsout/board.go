// Package lightsout implements the Lights Out puzzle: the board model with
// its plus-shaped toggle, scramble generation, and a GF(2) solver that finds
// a set of switch presses clearing any solvable board.
//
// All operations are pure: boards are never mutated in place, and the only
// non-determinism is the injected scramble RNG.
package lightsout

import (
	"errors"
	"fmt"
	"math/rand"
)

// Board holds the on/off state of every light on a square grid,
// row-major: index = row*size + col.
type Board []bool

// Position identifies a single grid cell.
type Position struct {
	Row, Col int
}

// Precondition violations. Callers must not invoke board or solver
// operations with mismatched dimensions; these fail fast instead of
// producing a malformed result.
var (
	ErrInvalidSize       = errors.New("lightsout: grid size must be positive")
	ErrDimensionMismatch = errors.New("lightsout: board length does not match grid size")
	ErrOutOfRange        = errors.New("lightsout: cell outside the grid")
)

// checkDimensions validates that b is a size×size board.
func checkDimensions(b Board, size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if len(b) != size*size {
		return fmt.Errorf("%w: board length %d, grid %dx%d", ErrDimensionMismatch, len(b), size, size)
	}
	return nil
}

// NeighborGroup returns the cell itself plus its in-bounds orthogonal
// neighbors: the set of cells flipped together when (row, col) is pressed.
// Corner cells affect 3 cells, edge cells 4, interior cells 5.
func NeighborGroup(size, row, col int) []Position {
	offsets := [5]Position{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	group := make([]Position, 0, 5)
	for _, d := range offsets {
		r, c := row+d.Row, col+d.Col
		if r >= 0 && r < size && c >= 0 && c < size {
			group = append(group, Position{Row: r, Col: c})
		}
	}
	return group
}

// Toggle returns a new board with the neighbor group of (row, col) flipped.
// The input board is never modified.
func Toggle(b Board, size, row, col int) (Board, error) {
	if err := checkDimensions(b, size); err != nil {
		return nil, err
	}
	if row < 0 || row >= size || col < 0 || col >= size {
		return nil, fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrOutOfRange, row, col, size, size)
	}

	next := make(Board, len(b))
	copy(next, b)
	for _, p := range NeighborGroup(size, row, col) {
		i := p.Row*size + p.Col
		next[i] = !next[i]
	}
	return next, nil
}

// Scramble builds a starting board by applying steps random toggles to an
// all-clear board. Toggles are invertible, so the result is always solvable.
// The RNG is injected so scrambles are reproducible under a fixed seed.
func Scramble(rng *rand.Rand, size, steps int) (Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	b := make(Board, size*size)
	for i := 0; i < steps; i++ {
		var err error
		b, err = Toggle(b, size, rng.Intn(size), rng.Intn(size))
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

// IsCleared reports whether every light is off.
func IsCleared(b Board) bool {
	for _, lit := range b {
		if lit {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	next := make(Board, len(b))
	copy(next, b)
	return next
}
