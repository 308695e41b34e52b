// SPDX-License-Identifier: MIT

package smithwaterman

import "errors"

// The alignment itself is total: Align never fails for valid options,
// whatever the inputs (empty sequences included). Only option validation
// returns these sentinels.
var (
	// ErrBadCosts indicates a cost table that cannot produce a local
	// alignment: Match must be positive and every other cost non-positive.
	ErrBadCosts = errors.New("smithwaterman: match cost must be > 0 and mismatch/insertion/deletion costs <= 0")

	// ErrBadOption indicates an out-of-range option value
	// (unknown TracebackPolicy, negative MaxAlignments).
	ErrBadOption = errors.New("smithwaterman: invalid option")
)
