// SPDX-License-Identifier: MIT

package smithwaterman

import "strings"

// Direction is one traceback move out of a matrix cell.
//
//   - Diagonal: A[col-1] aligned with B[row-1] (match or substitution).
//   - Up:       B[row-1] aligned with a gap in A (deletion).
//   - Left:     A[col-1] aligned with a gap in B (insertion).
//
// The declaration order is also the tie-break and enumeration order.
type Direction uint8

const (
	Diagonal Direction = iota
	Up
	Left
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// allDirections lists directions in enumeration order.
var allDirections = [...]Direction{Diagonal, Up, Left}

// DirectionSet is the set of optimal incoming moves of one cell, stored as
// a 3-bit mask. A zero-score cell has an empty set.
type DirectionSet uint8

// Add returns s with d included.
func (s DirectionSet) Add(d Direction) DirectionSet { return s | 1<<d }

// Has reports whether d is in s.
func (s DirectionSet) Has(d Direction) bool { return s&(1<<d) != 0 }

// Empty reports whether s holds no direction.
func (s DirectionSet) Empty() bool { return s == 0 }

// Len returns the number of directions in s (0..3).
func (s DirectionSet) Len() int {
	n := 0
	for _, d := range allDirections {
		if s.Has(d) {
			n++
		}
	}

	return n
}

// First returns the first direction of s in Diagonal, Up, Left order.
// ok is false for the empty set.
func (s DirectionSet) First() (d Direction, ok bool) {
	for _, d = range allDirections {
		if s.Has(d) {
			return d, true
		}
	}

	return 0, false
}

// Directions returns the members of s in Diagonal, Up, Left order.
func (s DirectionSet) Directions() []Direction {
	out := make([]Direction, 0, 3)
	for _, d := range allDirections {
		if s.Has(d) {
			out = append(out, d)
		}
	}

	return out
}

// String renders s as e.g. "{diagonal,left}".
func (s DirectionSet) String() string {
	names := make([]string, 0, 3)
	for _, d := range s.Directions() {
		names = append(names, d.String())
	}

	return "{" + strings.Join(names, ",") + "}"
}
