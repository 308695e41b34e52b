// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public methods return these sentinels (possibly wrapped with the
// method and coordinates); callers match them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
