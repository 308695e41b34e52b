// SPDX-License-Identifier: MIT

// Package matrix provides the dense grid storage used by the alignment
// algorithms.
//
// Grid is a row-major matrix of any element type, backed by one flat
// slice that is sized once at construction. The scoring engine keeps both
// its integer score table and its per-cell direction sets in Grids, so
// every cell the recurrence touches is allocated up front.
//
//   - Public indexers (At/Set) validate bounds and return ErrOutOfRange.
//   - Row exposes a slice view of one row for tight inner loops.
//   - Zero-sized grids (0×k, k×0) are legal; they model empty sequences.
//
// Complexity: O(rows·cols) memory, O(1) per access.
package matrix
