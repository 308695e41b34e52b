// SPDX-License-Identifier: MIT

// Package render turns alignments into terminal text: the padded
// side-by-side view of an alignment within its two source sequences, an
// optional match midline, and a dump of the score matrix for debugging.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/swalign/smithwaterman"
)

// Options control the rendering.
type Options struct {
	// Filler replaces every position outside the aligned core. Default '*'.
	Filler rune
	// Gap marks a position missing in one sequence. Default '-'.
	Gap rune
	// Color highlights matches, mismatches and gaps with ANSI styles.
	Color bool
	// Midline adds a marker line between the two rows ('|' match,
	// '.' mismatch, ' ' gap).
	Midline bool
}

// DefaultOptions keeps the plain look: '*' filler, '-' gap, no colour.
func DefaultOptions() Options {
	return Options{Filler: '*', Gap: smithwaterman.DefaultGap}
}

var (
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	gapStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	fillerStyle   = lipgloss.NewStyle().Faint(true)
)

// Padded returns the two display lines for al.
//
// Both source sequences are shown at full length with everything outside
// the aligned core replaced by Filler. The shorter prefix and suffix are
// padded so that the two cores start in the same column:
//
//	width = max(prefixA, prefixB) + len(core) + max(suffixA, suffixB)
func Padded(a, b []rune, al smithwaterman.Alignment[rune], opts Options) (lineA, lineB string) {
	opts = withDefaults(opts)
	maxPrefix := max(al.StartA, al.StartB)
	maxSuffix := max(len(a)-al.EndA, len(b)-al.EndB)

	fill := func(n int) string {
		s := strings.Repeat(string(opts.Filler), n)
		if opts.Color && n > 0 {
			return fillerStyle.Render(s)
		}
		return s
	}
	head, tail := fill(maxPrefix), fill(maxSuffix)

	return head + core(al, opts, true) + tail, head + core(al, opts, false) + tail
}

// Marker returns the midline for al: '|' match, '.' mismatch, ' ' gap.
func Marker(al smithwaterman.Alignment[rune]) string {
	var sb strings.Builder
	for _, c := range al.Columns {
		switch {
		case c.Op != smithwaterman.Diagonal:
			sb.WriteByte(' ')
		case c.A == c.B:
			sb.WriteByte('|')
		default:
			sb.WriteByte('.')
		}
	}

	return sb.String()
}

// Alignment writes the padded view of al to w: the two lines, with the
// midline between them when opts.Midline is set.
func Alignment(w io.Writer, a, b []rune, al smithwaterman.Alignment[rune], opts Options) error {
	lineA, lineB := Padded(a, b, al, opts)
	if _, err := fmt.Fprintln(w, lineA); err != nil {
		return err
	}
	if opts.Midline {
		pad := strings.Repeat(" ", max(al.StartA, al.StartB))
		if _, err := fmt.Fprintln(w, pad+Marker(al)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, lineB)

	return err
}

// core renders one gapped row, top (A) or bottom (B).
func core(al smithwaterman.Alignment[rune], opts Options, top bool) string {
	var sb strings.Builder
	for _, c := range al.Columns {
		sym := c.B
		if top {
			sym = c.A
		}
		if (top && c.Op == smithwaterman.Up) || (!top && c.Op == smithwaterman.Left) {
			sym = opts.Gap
		}
		if !opts.Color {
			sb.WriteRune(sym)
			continue
		}
		switch {
		case c.Op != smithwaterman.Diagonal:
			sb.WriteString(gapStyle.Render(string(sym)))
		case c.A == c.B:
			sb.WriteString(matchStyle.Render(string(sym)))
		default:
			sb.WriteString(mismatchStyle.Render(string(sym)))
		}
	}

	return sb.String()
}

// withDefaults fills zero runes from DefaultOptions.
func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.Filler == 0 {
		opts.Filler = def.Filler
	}
	if opts.Gap == 0 {
		opts.Gap = def.Gap
	}

	return opts
}

// arrows maps a direction set to its glyphs in Diagonal, Up, Left order.
func arrows(s smithwaterman.DirectionSet) string {
	var sb strings.Builder
	for _, d := range s.Directions() {
		switch d {
		case smithwaterman.Diagonal:
			sb.WriteRune('↖')
		case smithwaterman.Up:
			sb.WriteRune('↑')
		case smithwaterman.Left:
			sb.WriteRune('←')
		}
	}

	return sb.String()
}

// Table writes the score matrix of a (columns) against b (rows), each
// cell prefixed with the arrows of its direction set.
func Table(w io.Writer, a, b []rune, sm *smithwaterman.ScoreMatrix) error {
	const cell = "%5s"

	var sb strings.Builder
	fmt.Fprintf(&sb, cell, "")
	fmt.Fprintf(&sb, cell, "-")
	for _, r := range a {
		fmt.Fprintf(&sb, cell, string(r))
	}
	sb.WriteByte('\n')

	for row := 0; row < sm.Rows(); row++ {
		label := "-"
		if row > 0 {
			label = string(b[row-1])
		}
		fmt.Fprintf(&sb, cell, label)
		for col := 0; col < sm.Cols(); col++ {
			v, err := sm.ScoreAt(row, col)
			if err != nil {
				return err
			}
			d, err := sm.DirectionsAt(row, col)
			if err != nil {
				return err
			}
			fmt.Fprintf(&sb, cell, arrows(d)+strconv.Itoa(v))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
