// SPDX-License-Identifier: MIT

package fasta

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"
)

// gzipMagic starts every gzip member (RFC 1952).
var gzipMagic = []byte{0x1f, 0x8b}

// stdin is swapped in tests.
var stdin io.Reader = os.Stdin

// input is an opened FASTA source: the decoded stream and everything that
// must be closed once it has been read, innermost first.
type input struct {
	io.Reader
	closers []io.Closer
}

func (in *input) Close() error {
	var errs []error
	for _, c := range in.closers {
		errs = append(errs, c.Close())
	}

	return errors.Join(errs...)
}

// open returns a reader for path, "-" meaning stdin. Compression is
// sniffed from the first two bytes through a buffered reader, so gzip
// works on pipes as well as files; a ".gz" suffix forces it.
func open(path string) (*input, error) {
	in := &input{}
	raw := stdin
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		raw = fh
		in.closers = append(in.closers, fh)
	}

	br := bufio.NewReader(raw)
	head, _ := br.Peek(len(gzipMagic))
	if !strings.HasSuffix(path, ".gz") && string(head) != string(gzipMagic) {
		in.Reader = br
		return in, nil
	}

	gz, err := gzip.NewReader(br)
	if err != nil {
		_ = in.Close()
		return nil, err
	}
	in.Reader = gz
	in.closers = append([]io.Closer{gz}, in.closers...)

	return in, nil
}
