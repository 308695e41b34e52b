// Package swalign finds every optimal local alignment of two sequences
// with the Smith-Waterman algorithm, and ships the pieces needed to use it
// from the command line.
//
// 🚀 What is swalign?
//
//	A small, dependency-light toolkit that brings together:
//		• Scoring: the (m+1)×(n+1) Smith-Waterman matrix with tie-aware direction sets
//		• Traceback: every distinct optimal path, or one path per maximal cell
//		• Generics: any comparable symbol type (runes, bytes, tokens, codons)
//		• FASTA input: plain or gzip files and stdin
//		• Presentation: padded side-by-side view, match line, DP table dump
//
// ✨ Why choose swalign?
//
//   - Deterministic: same inputs, byte-identical results
//   - Bounded: an explicit stack instead of recursion, and an optional cap on alignments
//   - Total: empty inputs align to score 0 without errors
//
// Under the hood, everything is organized under these packages:
//
//	smithwaterman/  Score, Traceback and Align
//	matrix/         dense row-major Grid used for scores and directions
//	fasta/          FASTA records, ReadFile and FirstPair
//	render/         padded view, match line and score table
//	cmd/swalign/    the swalign command
//
// Quick example:
//
//	res, _ := smithwaterman.AlignStrings("ACACACTA", "AGCACACA")
//	// res.Score == 5, three distinct optimal alignments
//
//	go install github.com/katalvlaran/swalign/cmd/swalign@latest
package swalign
