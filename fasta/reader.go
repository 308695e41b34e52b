// SPDX-License-Identifier: MIT

package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrTooFewSequences is returned by FirstPair when fewer than two records exist.
var ErrTooFewSequences = errors.New("fasta: input must contain at least two sequences")

// Record is one parsed FASTA record.
// ID is the first word of the header, Description the rest of it.
// Data found before the first header becomes a record with an empty ID.
// A header followed directly by another header is dropped; the last
// record is kept even when its sequence is empty.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// Parse reads every record from r.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		records []Record
		cur     *Record
	)
	for sc.Scan() {
		line := bytes.TrimSuffix(sc.Bytes(), []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if cur != nil && len(cur.Seq) == 0 {
				records = records[:len(records)-1] // header without sequence lines
			}
			id, desc := splitHeader(string(line[1:]))
			records = append(records, Record{ID: id, Description: desc})
			cur = &records[len(records)-1]
			continue
		}
		if cur == nil { // sequence data before any header
			records = append(records, Record{})
			cur = &records[len(records)-1]
		}
		cur.Seq = append(cur.Seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta: scan: %w", err)
	}

	return records, nil
}

// ReadFile parses the FASTA file at path ("-" for stdin, gzip auto-detected).
func ReadFile(path string) ([]Record, error) {
	rc, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("fasta: could not open file at %s: %w", path, err)
	}
	defer func() { _ = rc.Close() }()

	records, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

// FirstPair returns the first two records and how many further records
// were ignored. Callers are expected to warn when extra > 0.
func FirstPair(records []Record) (a, b Record, extra int, err error) {
	if len(records) < 2 {
		return Record{}, Record{}, 0, fmt.Errorf("%w (found %d)", ErrTooFewSequences, len(records))
	}

	return records[0], records[1], len(records) - 2, nil
}

// splitHeader splits a header (without '>') into its ID and description.
func splitHeader(h string) (id, desc string) {
	h = strings.TrimSpace(h)
	if i := strings.IndexAny(h, " \t"); i >= 0 {
		return h[:i], strings.TrimSpace(h[i+1:])
	}

	return h, ""
}
