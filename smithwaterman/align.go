// SPDX-License-Identifier: MIT

package smithwaterman

// DefaultGap is the gap marker used by the string helpers.
const DefaultGap = '-'

// Align computes the local alignment score of a and b and every distinct
// optimal alignment reaching it.
//
// a is the query (matrix columns), b the reference (matrix rows). Symbols
// are compared with ==; there is no case folding or alphabet check.
//
// The only error is an invalid option (ErrBadCosts, ErrBadOption). With
// valid options Align is total: empty inputs give Score 0 and no
// alignments.
//
// Example:
//
//	res, _ := Align([]byte("GATTACA"), []byte("GCATGCU"))
//	fmt.Println(res.Score) // 2
func Align[S comparable](a, b []S, opts ...Option) (*Result[S], error) {
	o := gatherOptions(opts...)
	if err := o.Validate(); err != nil {
		return nil, err
	}

	sm := Score(a, b, o.Costs)
	alignments, truncated := Traceback(sm, a, b, o)

	return &Result[S]{
		Score:      sm.max,
		Alignments: alignments,
		Truncated:  truncated,
		Matrix:     sm,
	}, nil
}

// AlignStrings aligns two strings rune by rune.
func AlignStrings(a, b string, opts ...Option) (*Result[rune], error) {
	return Align([]rune(a), []rune(b), opts...)
}

// Strings renders the two gapped rows of a rune alignment.
func Strings(al Alignment[rune], gap rune) (top, bottom string) {
	return string(al.AlignedA(gap)), string(al.AlignedB(gap))
}
