// SPDX-License-Identifier: MIT

// Command swalign prints every optimal Smith-Waterman local alignment of
// the first two sequences in a FASTA file.
//
// Usage:
//
//	swalign [flags] <fasta_file>
package main

import (
	"os"

	"github.com/katalvlaran/swalign/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
