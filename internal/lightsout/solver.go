package lightsout

// Solution marks which switches to press to clear a board. Index layout
// matches Board: true at row*size+col means "press that switch once".
// Presses commute and are self-inverse over GF(2), so order never matters.
type Solution []bool

// Solve computes a press-set clearing the given board.
//
// It returns (solution, true, nil) when one exists, (nil, false, nil) when
// the board is unsolvable, and a non-nil error only for precondition
// violations. Unsolvable is a legitimate outcome and is distinct from the
// empty solution on an already-clear board.
//
// The puzzle is a linear system over GF(2): row i of the coefficient matrix
// has a 1 in column j iff pressing switch j flips cell i, and the augmented
// column holds cell i's current state. Addition is XOR, multiplication is
// AND; no scaling is needed since the only nonzero field element is 1.
func Solve(b Board, size int) (Solution, bool, error) {
	if err := checkDimensions(b, size); err != nil {
		return nil, false, err
	}

	total := size * size
	width := total + 1 // coefficient columns plus the augmented column

	// Build the augmented matrix as a flat row-major buffer. The neighbor
	// relation is symmetric, so filling row i from switch i's group yields
	// the same matrix as enumerating switches per cell.
	m := make([]uint8, total*width)
	for cell := 0; cell < total; cell++ {
		row := m[cell*width : cell*width+width]
		for _, p := range NeighborGroup(size, cell/size, cell%size) {
			row[p.Row*size+p.Col] = 1
		}
		if b[cell] {
			row[total] = 1
		}
	}

	// Forward elimination with row swaps only. Each pivot column is cleared
	// from every other row, so the matrix ends in reduced row-echelon form.
	pivotRow := 0
	for col := 0; col < total && pivotRow < total; col++ {
		pivot := -1
		for r := pivotRow; r < total; r++ {
			if m[r*width+col] == 1 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			// No pivot in this column: free variable, move on without
			// consuming a pivot row.
			continue
		}

		if pivot != pivotRow {
			for k := col; k < width; k++ {
				m[pivotRow*width+k], m[pivot*width+k] = m[pivot*width+k], m[pivotRow*width+k]
			}
		}

		for r := 0; r < total; r++ {
			if r == pivotRow || m[r*width+col] == 0 {
				continue
			}
			for k := col; k < width; k++ {
				m[r*width+k] ^= m[pivotRow*width+k]
			}
		}

		pivotRow++
	}

	// A row with an all-zero coefficient part but augmented bit 1 encodes
	// the contradiction 0 = 1: no press-set clears this board.
	for r := 0; r < total; r++ {
		if m[r*width+total] == 0 {
			continue
		}
		contradiction := true
		for k := 0; k < total; k++ {
			if m[r*width+k] == 1 {
				contradiction = false
				break
			}
		}
		if contradiction {
			return nil, false, nil
		}
	}

	// Read off one particular solution: each pivot variable takes its row's
	// augmented value, free variables stay 0.
	sol := make(Solution, total)
	for r := 0; r < total; r++ {
		for k := 0; k < total; k++ {
			if m[r*width+k] == 1 {
				sol[k] = m[r*width+total] == 1
				break
			}
		}
	}
	return sol, true, nil
}

// Apply presses every switch marked in the solution and returns the
// resulting board. Useful for verifying a solution independently.
func (s Solution) Apply(b Board, size int) (Board, error) {
	if err := checkDimensions(b, size); err != nil {
		return nil, err
	}
	if len(s) != len(b) {
		return nil, checkDimensions(Board(s), size)
	}

	next := b.Clone()
	for i, press := range s {
		if !press {
			continue
		}
		var err error
		next, err = Toggle(next, size, i/size, i%size)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}
