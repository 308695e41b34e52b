// SPDX-License-Identifier: MIT

// Package smithwaterman computes local sequence alignments between two
// sequences with the Smith–Waterman dynamic-programming algorithm and
// reconstructs every optimal-scoring alignment, not just one.
//
// 🚀 What is Smith–Waterman?
//
//	Local alignment finds the pair of substrings of A and B that score
//	best under a match/mismatch/gap cost model. Unlike global alignment
//	the running score never drops below zero, so unrelated flanks are
//	simply left out of the alignment. Typical uses:
//	  • locating a conserved motif inside two DNA or protein sequences
//	  • comparing reads against a short reference window
//	  • fuzzy substring matching over any alphabet
//
// ✨ Key features:
//   - generic over the symbol type: any comparable S (byte, rune, int, ...)
//   - per-cell direction sets: every tied predecessor is remembered
//   - full tie enumeration (AllPaths) or the single first-direction walk
//     (FirstDirection)
//   - structural deduplication of alignments reached from different
//     maximal cells
//   - optional cap on the number of alignments returned
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/swalign/smithwaterman"
//
//	res, err := smithwaterman.AlignStrings("ACACACTA", "AGCACACA")
//	if err != nil {
//	  // only invalid options can fail
//	}
//	for _, al := range res.Alignments {
//	  top, bottom := smithwaterman.Strings(al, smithwaterman.DefaultGap)
//	  fmt.Println(top)
//	  fmt.Println(bottom)
//	}
//
// Algorithm outline:
//  1. Let n = len(A), m = len(B). Allocate an (m+1)×(n+1) score grid H
//     and a parallel grid of direction sets; row 0 and column 0 stay 0.
//  2. For row = 1..m, col = 1..n:
//     diagonal = H[row-1][col-1] + (A[col-1]==B[row-1] ? match : mismatch)
//     up       = H[row-1][col]   + deletion
//     left     = H[row][col-1]   + insertion
//     H[row][col] = max(0, diagonal, up, left)
//     and, when H[row][col] > 0, record every direction reaching it.
//  3. Track the global maximum and all cells holding it (row-major order).
//  4. From each maximal cell walk the direction sets back to a zero cell,
//     forking at ties, and collect one alignment per distinct path.
//
// Complexity:
//
//	Time   = O(n·m) for the fill, plus the traceback, which is linear in
//	         the total length of the paths it reports (exponential in the
//	         worst all-ties case, bounded by MaxAlignments).
//	Memory = O(n·m)
package smithwaterman
