// SPDX-License-Identifier: MIT

package smithwaterman_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/swalign/smithwaterman"
	"github.com/stretchr/testify/require"
)

// summary flattens one alignment into "TOP/BOTTOM A[s:e] B[s:e]" for
// compact assertions.
func summary(al smithwaterman.Alignment[rune]) string {
	top, bottom := smithwaterman.Strings(al, smithwaterman.DefaultGap)
	return fmt.Sprintf("%s/%s A[%d:%d] B[%d:%d]", top, bottom, al.StartA, al.EndA, al.StartB, al.EndB)
}

// summaries applies summary to every alignment of res.
func summaries(res *smithwaterman.Result[rune]) []string {
	out := make([]string, 0, len(res.Alignments))
	for _, al := range res.Alignments {
		out = append(out, summary(al))
	}

	return out
}

// mustAlign runs AlignStrings and fails the test on error.
func mustAlign(t *testing.T, a, b string, opts ...smithwaterman.Option) *smithwaterman.Result[rune] {
	t.Helper()
	res, err := smithwaterman.AlignStrings(a, b, opts...)
	require.NoError(t, err)
	require.NotNil(t, res)

	return res
}

// randomDNA returns a string of length [0, maxLen] over ACGT.
func randomDNA(rng *rand.Rand, maxLen int) string {
	const alphabet = "ACGT"
	n := rng.Intn(maxLen + 1)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}

	return sb.String()
}
