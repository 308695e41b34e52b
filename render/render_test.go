// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/swalign/render"
	"github.com/katalvlaran/swalign/smithwaterman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classic aligns ACACACTA against AGCACACA with default options.
func classic(t *testing.T) ([]rune, []rune, *smithwaterman.Result[rune]) {
	t.Helper()
	a, b := []rune("ACACACTA"), []rune("AGCACACA")
	res, err := smithwaterman.Align(a, b)
	require.NoError(t, err)
	require.Len(t, res.Alignments, 3)

	return a, b, res
}

// TestPadded_CoresLineUp checks filler padding on both sides.
func TestPadded_CoresLineUp(t *testing.T) {
	a, b, res := classic(t)

	top, bottom := render.Padded(a, b, res.Alignments[0], render.DefaultOptions())
	assert.Equal(t, "**CACAC**", top)
	assert.Equal(t, "**CACAC**", bottom)

	top, bottom = render.Padded(a, b, res.Alignments[1], render.DefaultOptions())
	assert.Equal(t, "***ACACA***", top) // A[0:5] B[3:8]: prefixes 0/3, suffixes 3/0
	assert.Equal(t, "***ACACA***", bottom)

	top, bottom = render.Padded(a, b, res.Alignments[2], render.DefaultOptions())
	assert.Equal(t, "**CACACTA", top)
	assert.Equal(t, "**CACAC-A", bottom)
}

// TestPadded_EqualWidth verifies both lines always share one width.
func TestPadded_EqualWidth(t *testing.T) {
	a, b, res := classic(t)
	for _, al := range res.Alignments {
		top, bottom := render.Padded(a, b, al, render.DefaultOptions())
		assert.Equal(t, len(top), len(bottom))
		want := max(al.StartA, al.StartB) + al.Len() + max(len(a)-al.EndA, len(b)-al.EndB)
		assert.Equal(t, want, len(top))
	}
}

// TestPadded_CustomGlyphs uses a different filler and gap.
func TestPadded_CustomGlyphs(t *testing.T) {
	a, b, res := classic(t)
	top, bottom := render.Padded(a, b, res.Alignments[2], render.Options{Filler: '.', Gap: '_'})
	assert.Equal(t, "..CACACTA", top)
	assert.Equal(t, "..CACAC_A", bottom)
}

// TestPadded_ZeroOptions falls back to the defaults.
func TestPadded_ZeroOptions(t *testing.T) {
	a, b, res := classic(t)
	top, _ := render.Padded(a, b, res.Alignments[0], render.Options{})
	assert.Equal(t, "**CACAC**", top)
}

// TestPadded_Color keeps the visible width when styles are applied.
func TestPadded_Color(t *testing.T) {
	a, b, res := classic(t)
	opts := render.DefaultOptions()
	opts.Color = true

	top, bottom := render.Padded(a, b, res.Alignments[2], opts)
	assert.Equal(t, 9, lipgloss.Width(top))
	assert.Equal(t, 9, lipgloss.Width(bottom))
}

// TestMarker covers match, mismatch and gap columns.
func TestMarker(t *testing.T) {
	al := smithwaterman.Alignment[rune]{Columns: []smithwaterman.Column[rune]{
		{Op: smithwaterman.Diagonal, A: 'A', B: 'A'},
		{Op: smithwaterman.Diagonal, A: 'C', B: 'G'},
		{Op: smithwaterman.Up, B: 'T'},
		{Op: smithwaterman.Left, A: 'T'},
		{Op: smithwaterman.Diagonal, A: 'A', B: 'A'},
	}}
	assert.Equal(t, "|.  |", render.Marker(al))
}

// TestAlignment writes the two-line and three-line views.
func TestAlignment(t *testing.T) {
	a, b, res := classic(t)

	var buf bytes.Buffer
	require.NoError(t, render.Alignment(&buf, a, b, res.Alignments[2], render.DefaultOptions()))
	assert.Equal(t, "**CACACTA\n**CACAC-A\n", buf.String())

	buf.Reset()
	opts := render.DefaultOptions()
	opts.Midline = true
	require.NoError(t, render.Alignment(&buf, a, b, res.Alignments[2], opts))
	assert.Equal(t, "**CACACTA\n  ||||| |\n**CACAC-A\n", buf.String())
}

// TestTable dumps a 2×2 matrix with arrows.
func TestTable(t *testing.T) {
	a, b := []rune("AC"), []rune("AC")
	sm := smithwaterman.Score(a, b, smithwaterman.DefaultCosts())

	var buf bytes.Buffer
	require.NoError(t, render.Table(&buf, a, b, sm))

	want := strings.Join([]string{
		"         -    A    C",
		"    -    0    0    0",
		"    A    0   ↖1    0",
		"    C    0    0   ↖2",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}
