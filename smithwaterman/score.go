// SPDX-License-Identifier: MIT

package smithwaterman

import (
	"github.com/katalvlaran/swalign/matrix"
)

// ScoreMatrix is the filled similarity matrix of one Score call together
// with its per-cell direction sets and the cells holding the global
// maximum. It is immutable once Score returns; the traceback only reads it.
type ScoreMatrix struct {
	scores     *matrix.Grid[int]
	directions *matrix.Grid[DirectionSet]
	max        int
	maxCells   []Cell
}

// Score fills the Smith–Waterman matrix for a (columns) against b (rows).
//
// Cell (row, col) compares B[row-1] with A[col-1]. Row 0 and column 0 are
// the zero boundary. Every direction whose candidate equals the cell's
// score is recorded, but only for cells with score > 0: zero cells are
// traceback terminals.
//
// The global maximum is folded in row-major order: a strictly larger
// score resets the list of maximal cells, an equal one appends to it.
// Zero cells never enter the list, so it is empty when Max() == 0.
//
// Costs are used as given; Align validates them first.
//
// Complexity: O(n·m) time and memory.
func Score[S comparable](a, b []S, costs Costs) *ScoreMatrix {
	n, m := len(a), len(b)

	// Stage 1 (Prepare): both grids sized from the inputs, zero boundary implied.
	scores, _ := matrix.NewGrid[int](m+1, n+1)              // lengths are never negative
	directions, _ := matrix.NewGrid[DirectionSet](m+1, n+1) // same shape
	sm := &ScoreMatrix{scores: scores, directions: directions}

	// Stage 2 (Fill): row views keep the inner loop free of bounds checks.
	for row := 1; row <= m; row++ {
		prev, _ := scores.Row(row - 1)
		curr, _ := scores.Row(row)
		dirs, _ := directions.Row(row)
		sym := b[row-1]

		for col := 1; col <= n; col++ {
			sub := costs.Mismatch
			if a[col-1] == sym {
				sub = costs.Match
			}
			diagonal := prev[col-1] + sub
			up := prev[col] + costs.Deletion
			left := curr[col-1] + costs.Insertion

			best := max(0, diagonal, up, left)
			curr[col] = best
			if best == 0 {
				continue // clamped: no directions, never a start cell
			}

			var set DirectionSet
			if best == diagonal {
				set = set.Add(Diagonal)
			}
			if best == up {
				set = set.Add(Up)
			}
			if best == left {
				set = set.Add(Left)
			}
			dirs[col] = set

			// Stage 3 (Fold): running maximum and its cells.
			switch {
			case best > sm.max:
				sm.max = best
				sm.maxCells = append(sm.maxCells[:0], Cell{Row: row, Col: col})
			case best == sm.max:
				sm.maxCells = append(sm.maxCells, Cell{Row: row, Col: col})
			}
		}
	}

	return sm
}

// Rows returns m+1, the number of matrix rows (B plus the boundary row).
func (sm *ScoreMatrix) Rows() int { return sm.scores.Rows() }

// Cols returns n+1, the number of matrix columns (A plus the boundary column).
func (sm *ScoreMatrix) Cols() int { return sm.scores.Cols() }

// Max returns the global maximum score.
func (sm *ScoreMatrix) Max() int { return sm.max }

// MaxCells returns a copy of the cells holding Max, in row-major order.
func (sm *ScoreMatrix) MaxCells() []Cell {
	return append([]Cell(nil), sm.maxCells...)
}

// ScoreAt returns the score of (row, col); matrix.ErrOutOfRange if outside.
func (sm *ScoreMatrix) ScoreAt(row, col int) (int, error) {
	return sm.scores.At(row, col)
}

// DirectionsAt returns the direction set of (row, col); matrix.ErrOutOfRange if outside.
func (sm *ScoreMatrix) DirectionsAt(row, col int) (DirectionSet, error) {
	return sm.directions.At(row, col)
}

// String renders the raw score grid, one bracketed row per line.
func (sm *ScoreMatrix) String() string { return sm.scores.String() }

// score and dirs are the traceback's unchecked readers: every cell it
// visits was reached by a recorded move from an in-range cell.
func (sm *ScoreMatrix) score(c Cell) int {
	v, _ := sm.scores.At(c.Row, c.Col)
	return v
}

func (sm *ScoreMatrix) dirs(c Cell) DirectionSet {
	v, _ := sm.directions.At(c.Row, c.Col)
	return v
}
