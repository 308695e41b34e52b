// SPDX-License-Identifier: MIT

// Package fasta reads multi-record FASTA input into raw sequences.
//
// A record starts at a '>' header line; the following lines, up to the
// next header, are concatenated into its sequence. Windows line endings
// are normalised and blank lines skipped. Sequence letters are kept
// verbatim (no case folding, no alphabet check) because the aligner
// compares symbols exactly.
//
// Inputs may be plain or gzip-compressed files, or "-" for stdin.
package fasta
