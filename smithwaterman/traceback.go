// SPDX-License-Identifier: MIT

package smithwaterman

import (
	"hash/maphash"
	"slices"
)

// frame is one pending move on the explicit traceback stack: take dir out
// of (row, col) when the current partial path holds depth columns.
type frame struct {
	cell  Cell
	depth int
	dir   Direction
}

// tracer carries the state of one Traceback call. The partial path is a
// single buffer shared by all frames: a frame truncates it to its depth
// before appending, so memory stays bounded by the longest path plus
// the pending frames.
type tracer[S comparable] struct {
	sm     *ScoreMatrix
	a, b   []S
	policy TracebackPolicy
	limit  int

	path  []Column[S]
	stack []frame

	seed maphash.Seed
	seen map[uint64][]int // column-hash → indices into out
	out  []Alignment[S]
}

// Traceback reconstructs the optimal alignments recorded in sm.
//
// Stage 1: every maximal cell, in row-major order, starts a walk.
// Stage 2: the walk pops frames from an explicit stack; each step emits
// one column (prepended in reverse, flipped on completion) and moves to
// the predecessor. A cell with score 0 (or no directions) ends the path.
// Under AllPaths every recorded direction is pushed, so the walk forks at
// ties in Diagonal, Up, Left order; under FirstDirection only the first is.
// Stage 3: a finished path is kept unless an identical column sequence,
// i.e. the same (aligned A, aligned B) pair, was already produced.
//
// When opts.MaxAlignments > 0 the walk stops once that many distinct
// alignments exist and another distinct one is found; truncated is then true.
//
// a and b must be the sequences sm was computed from.
func Traceback[S comparable](sm *ScoreMatrix, a, b []S, opts Options) (alignments []Alignment[S], truncated bool) {
	if sm == nil || sm.max <= 0 {
		return nil, false
	}

	t := &tracer[S]{
		sm:     sm,
		a:      a,
		b:      b,
		policy: opts.Policy,
		limit:  opts.MaxAlignments,
		seed:   maphash.MakeSeed(),
		seen:   make(map[uint64][]int),
	}
	for _, start := range sm.maxCells {
		if !t.walk(start) {
			return t.out, true
		}
	}

	return t.out, false
}

// walk enumerates the paths out of start. It returns false when the cap
// was hit.
func (t *tracer[S]) walk(start Cell) bool {
	if t.sm.score(start) == 0 {
		return true // nothing to align
	}

	t.stack = t.stack[:0]
	t.push(start, 0)
	for len(t.stack) > 0 {
		f := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]

		t.path = t.path[:f.depth]
		next := t.step(f)
		if t.terminal(next) {
			if !t.emit(next, start) {
				return false
			}
			continue
		}
		t.push(next, f.depth+1)
	}

	return true
}

// push schedules the moves out of c. Frames go on in reverse so that
// Diagonal is popped first.
func (t *tracer[S]) push(c Cell, depth int) {
	set := t.sm.dirs(c)
	if t.policy == FirstDirection {
		if d, ok := set.First(); ok {
			t.stack = append(t.stack, frame{cell: c, depth: depth, dir: d})
		}
		return
	}
	for i := len(allDirections) - 1; i >= 0; i-- {
		if d := allDirections[i]; set.Has(d) {
			t.stack = append(t.stack, frame{cell: c, depth: depth, dir: d})
		}
	}
}

// step appends the column for f and returns the predecessor cell.
func (t *tracer[S]) step(f frame) Cell {
	row, col := f.cell.Row, f.cell.Col
	switch f.dir {
	case Diagonal:
		t.path = append(t.path, Column[S]{Op: Diagonal, A: t.a[col-1], B: t.b[row-1]})
		return Cell{Row: row - 1, Col: col - 1}
	case Up:
		t.path = append(t.path, Column[S]{Op: Up, B: t.b[row-1]})
		return Cell{Row: row - 1, Col: col}
	default:
		t.path = append(t.path, Column[S]{Op: Left, A: t.a[col-1]})
		return Cell{Row: row, Col: col - 1}
	}
}

func (t *tracer[S]) terminal(c Cell) bool {
	return t.sm.score(c) == 0 || t.sm.dirs(c).Empty()
}

// emit records the current path, which runs from end back to origin.
// It returns false when the cap refuses a new distinct alignment.
func (t *tracer[S]) emit(origin, end Cell) bool {
	cols := make([]Column[S], len(t.path))
	for i, c := range t.path {
		cols[len(cols)-1-i] = c
	}

	h := hashColumns(t.seed, cols)
	for _, idx := range t.seen[h] {
		if slices.Equal(t.out[idx].Columns, cols) {
			return true // duplicate of an earlier path
		}
	}
	if t.limit > 0 && len(t.out) >= t.limit {
		return false
	}

	t.seen[h] = append(t.seen[h], len(t.out))
	t.out = append(t.out, Alignment[S]{
		Columns: cols,
		StartA:  origin.Col,
		EndA:    end.Col,
		StartB:  origin.Row,
		EndB:    end.Row,
	})

	return true
}

// hashColumns buckets column sequences; equality is still confirmed with
// slices.Equal, so the per-call seed never affects the result.
func hashColumns[S comparable](seed maphash.Seed, cols []Column[S]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, c := range cols {
		maphash.WriteComparable(&h, c)
	}

	return h.Sum64()
}
