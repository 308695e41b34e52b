// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Grid is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Grid[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewGrid creates an rows×cols Grid initialized to the zero value of T.
// Stage 1 (Validate): ensure rows and cols are non-negative.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(rows*cols) time and memory.
func NewGrid[T any](rows, cols int) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewGrid(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Grid[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid[T]) Rows() int { return g.r }

// Cols returns the number of columns in the grid.
func (g *Grid[T]) Cols() int { return g.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (g *Grid[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}

	return row*g.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// Row returns a view of row r that shares storage with the grid.
// Writes through the returned slice modify the grid. The slice has
// exactly Cols() elements, so ranging over it cannot leave the row.
// Complexity: O(1).
func (g *Grid[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= g.r {
		return nil, gridErrorf("Row", r, 0, ErrOutOfRange)
	}
	start := r * g.c

	return g.data[start : start+g.c : start+g.c], nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(rows*cols) for string construction.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for i := 0; i < g.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < g.c; j++ {
			if j > 0 {
				sb.WriteString(", ") // separate values with comma
			}
			fmt.Fprintf(&sb, "%v", g.data[i*g.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
