// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/swalign/render"
	"github.com/katalvlaran/swalign/smithwaterman"
)

// Report is the machine-readable result written by --format json|yaml.
type Report struct {
	Query      string            `json:"query" yaml:"query"`
	Subject    string            `json:"subject" yaml:"subject"`
	Score      int               `json:"score" yaml:"score"`
	Policy     string            `json:"policy" yaml:"policy"`
	Truncated  bool              `json:"truncated" yaml:"truncated"`
	Ignored    int               `json:"ignored_records,omitempty" yaml:"ignored_records,omitempty"`
	Alignments []AlignmentReport `json:"alignments" yaml:"alignments"`
}

// AlignmentReport describes one alignment. Ranges are half-open and
// zero-based.
type AlignmentReport struct {
	AlignedA string `json:"aligned_a" yaml:"aligned_a"`
	AlignedB string `json:"aligned_b" yaml:"aligned_b"`
	Midline  string `json:"midline" yaml:"midline"`
	StartA   int    `json:"start_a" yaml:"start_a"`
	EndA     int    `json:"end_a" yaml:"end_a"`
	StartB   int    `json:"start_b" yaml:"start_b"`
	EndB     int    `json:"end_b" yaml:"end_b"`
	Matches  int    `json:"matches" yaml:"matches"`
	Gaps     int    `json:"gaps" yaml:"gaps"`
}

func (j *job) report(res *smithwaterman.Result[rune]) Report {
	r := Report{
		Query:      recordName(j.query.ID, 0),
		Subject:    recordName(j.subject.ID, 1),
		Score:      res.Score,
		Policy:     j.align.Policy.String(),
		Truncated:  res.Truncated,
		Ignored:    j.ignored,
		Alignments: make([]AlignmentReport, 0, len(res.Alignments)),
	}
	for _, al := range res.Alignments {
		top, bottom := smithwaterman.Strings(al, j.render.Gap)
		r.Alignments = append(r.Alignments, AlignmentReport{
			AlignedA: top,
			AlignedB: bottom,
			Midline:  render.Marker(al),
			StartA:   al.StartA,
			EndA:     al.EndA,
			StartB:   al.StartB,
			EndB:     al.EndB,
			Matches:  al.Matches(),
			Gaps:     al.Gaps(),
		})
	}

	return r
}

// recordName falls back to the record position for headerless data.
func recordName(id string, i int) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("#%d", i+1)
}

// writeText prints the score, a blank line, then each alignment in the
// padded view followed by a blank line.
func writeText(w io.Writer, j *job, res *smithwaterman.Result[rune]) error {
	if _, err := fmt.Fprintf(w, "%d\n\n", res.Score); err != nil {
		return err
	}
	for _, al := range res.Alignments {
		if err := render.Alignment(w, j.a, j.b, al, j.render); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(w io.Writer, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))

	return err
}

func writeYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return enc.Close()
}
