// SPDX-License-Identifier: MIT

// Package smithwaterman defines costs, options and result types for
// local alignment.
package smithwaterman

import "fmt"

// ---------- Costs ----------

// Costs is the linear cost table of the recurrence.
//
// Fields:
//   - Match:     added on a diagonal step with equal symbols (> 0).
//   - Mismatch:  added on a diagonal step with different symbols (<= 0).
//   - Insertion: added on a Left step, a gap in B (<= 0).
//   - Deletion:  added on an Up step, a gap in A (<= 0).
type Costs struct {
	Match     int
	Mismatch  int
	Insertion int
	Deletion  int
}

// Default unit costs.
const (
	DefaultMatch     = 1
	DefaultMismatch  = -1
	DefaultInsertion = -1
	DefaultDeletion  = -1
)

// DefaultCosts returns {match: +1, mismatch: -1, insertion: -1, deletion: -1}.
func DefaultCosts() Costs {
	return Costs{
		Match:     DefaultMatch,
		Mismatch:  DefaultMismatch,
		Insertion: DefaultInsertion,
		Deletion:  DefaultDeletion,
	}
}

// Validate returns ErrBadCosts unless Match > 0 and the others are <= 0.
func (c Costs) Validate() error {
	if c.Match <= 0 || c.Mismatch > 0 || c.Insertion > 0 || c.Deletion > 0 {
		return fmt.Errorf("%w: got %+v", ErrBadCosts, c)
	}

	return nil
}

// ---------- Traceback policy ----------

// TracebackPolicy selects how ties in a cell's DirectionSet are explored.
//
//   - AllPaths:       fork at every tie; one alignment per distinct path.
//   - FirstDirection: follow only the first recorded direction per cell,
//     giving at most one alignment per maximal cell.
type TracebackPolicy int

const (
	// AllPaths enumerates every optimal path (default).
	AllPaths TracebackPolicy = iota

	// FirstDirection walks Diagonal before Up before Left and never forks.
	FirstDirection
)

// String returns "all" or "first".
func (p TracebackPolicy) String() string {
	switch p {
	case AllPaths:
		return "all"
	case FirstDirection:
		return "first"
	default:
		return fmt.Sprintf("TracebackPolicy(%d)", int(p))
	}
}

// ParsePolicy maps "all"/"first" (as printed by String) to a policy.
func ParsePolicy(s string) (TracebackPolicy, error) {
	switch s {
	case "all", "":
		return AllPaths, nil
	case "first":
		return FirstDirection, nil
	default:
		return 0, fmt.Errorf("%w: unknown traceback policy %q", ErrBadOption, s)
	}
}

// ---------- Options ----------

// Options configures Align.
//
// Fields:
//   - Costs:         linear cost table (DefaultCosts by default).
//   - Policy:        tie exploration policy (AllPaths by default).
//   - MaxAlignments: stop after this many distinct alignments; 0 means
//     unlimited. Result.Truncated reports whether more existed.
type Options struct {
	Costs         Costs
	Policy        TracebackPolicy
	MaxAlignments int
}

// DefaultOptions returns unit costs, AllPaths and no cap.
func DefaultOptions() Options {
	return Options{Costs: DefaultCosts(), Policy: AllPaths}
}

// Validate checks costs, policy and cap.
func (o Options) Validate() error {
	if err := o.Costs.Validate(); err != nil {
		return err
	}
	if o.Policy != AllPaths && o.Policy != FirstDirection {
		return fmt.Errorf("%w: policy %v", ErrBadOption, o.Policy)
	}
	if o.MaxAlignments < 0 {
		return fmt.Errorf("%w: MaxAlignments must be >= 0, got %d", ErrBadOption, o.MaxAlignments)
	}

	return nil
}

// Option mutates Options. Values are checked by Align, not here, so
// options built from user configuration surface as errors.
type Option func(*Options)

// WithCosts replaces the cost table.
func WithCosts(c Costs) Option {
	return func(o *Options) { o.Costs = c }
}

// WithPolicy sets the traceback policy.
func WithPolicy(p TracebackPolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithMaxAlignments caps the number of returned alignments (0 = unlimited).
func WithMaxAlignments(n int) Option {
	return func(o *Options) { o.MaxAlignments = n }
}

// WithOptions replaces every field at once; handy when Options come from
// a config file.
func WithOptions(src Options) Option {
	return func(o *Options) { *o = src }
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ---------- Results ----------

// Cell addresses one matrix cell. Row indexes B (1..m), Col indexes A (1..n).
type Cell struct {
	Row, Col int
}

// Column is one aligned position.
//
//   - Op == Diagonal: A and B both hold symbols.
//   - Op == Up:       B holds a symbol, A is a gap (zero value).
//   - Op == Left:     A holds a symbol, B is a gap (zero value).
type Column[S comparable] struct {
	Op Direction
	A  S
	B  S
}

// IsMatch reports whether the column pairs two equal symbols.
func (c Column[S]) IsMatch() bool { return c.Op == Diagonal && c.A == c.B }

// Alignment is one reconstructed local alignment.
// StartX/EndX are half-open [start, end) ranges into the original
// sequences covering the symbols (gaps excluded) of the aligned core.
type Alignment[S comparable] struct {
	Columns []Column[S]

	StartA, EndA int
	StartB, EndB int
}

// Len returns the number of aligned columns (gaps included).
func (al Alignment[S]) Len() int { return len(al.Columns) }

// AlignedA returns the gapped core of A, gap marking positions absent in A.
func (al Alignment[S]) AlignedA(gap S) []S {
	out := make([]S, len(al.Columns))
	for i, c := range al.Columns {
		if c.Op == Up {
			out[i] = gap
			continue
		}
		out[i] = c.A
	}

	return out
}

// AlignedB returns the gapped core of B, gap marking positions absent in B.
func (al Alignment[S]) AlignedB(gap S) []S {
	out := make([]S, len(al.Columns))
	for i, c := range al.Columns {
		if c.Op == Left {
			out[i] = gap
			continue
		}
		out[i] = c.B
	}

	return out
}

// Matches counts columns with equal symbols.
func (al Alignment[S]) Matches() int {
	n := 0
	for _, c := range al.Columns {
		if c.IsMatch() {
			n++
		}
	}

	return n
}

// Gaps counts Up and Left columns.
func (al Alignment[S]) Gaps() int {
	n := 0
	for _, c := range al.Columns {
		if c.Op != Diagonal {
			n++
		}
	}

	return n
}

// Score re-evaluates the alignment under costs. For every alignment
// returned by Align this equals Result.Score.
func (al Alignment[S]) Score(costs Costs) int {
	total := 0
	for _, c := range al.Columns {
		switch {
		case c.Op == Up:
			total += costs.Deletion
		case c.Op == Left:
			total += costs.Insertion
		case c.A == c.B:
			total += costs.Match
		default:
			total += costs.Mismatch
		}
	}

	return total
}

// Result is the output of Align.
//
//   - Score:      the global maximum of the score matrix (0 when the
//     inputs share no positively scoring region).
//   - Alignments: distinct optimal alignments in deterministic order:
//     maximal cells in row-major order, then Diagonal/Up/Left branch order.
//   - Truncated:  true when MaxAlignments stopped the enumeration early.
//   - Matrix:     the filled score matrix the alignments were traced from.
type Result[S comparable] struct {
	Score      int
	Alignments []Alignment[S]
	Truncated  bool
	Matrix     *ScoreMatrix
}
