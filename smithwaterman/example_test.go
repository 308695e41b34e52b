// SPDX-License-Identifier: MIT

package smithwaterman_test

import (
	"fmt"

	"github.com/katalvlaran/swalign/smithwaterman"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlignStrings
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two short DNA fragments sharing a CA-repeat:
//	  A = ACACACTA (query)
//	  B = AGCACACA (reference)
//
// Options: defaults (match +1, mismatch/insertion/deletion -1, AllPaths).
//
// Three cells reach the maximum score 5; each traces back to a different
// local alignment, one of them with a gap in B.
func ExampleAlignStrings() {
	res, err := smithwaterman.AlignStrings("ACACACTA", "AGCACACA")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("score:", res.Score)
	for _, al := range res.Alignments {
		top, bottom := smithwaterman.Strings(al, smithwaterman.DefaultGap)
		fmt.Printf("%-8s A[%d:%d]\n%-8s B[%d:%d]\n", top, al.StartA, al.EndA, bottom, al.StartB, al.EndB)
	}
	// Output:
	// score: 5
	// CACAC    A[1:6]
	// CACAC    B[2:7]
	// ACACA    A[0:5]
	// ACACA    B[3:8]
	// CACACTA  A[1:8]
	// CACAC-A  B[2:8]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign_policies
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A = ACA, B = ACCA. Cell (3,2) can be reached diagonally or from above,
//	so AllPaths reports one alignment more than FirstDirection.
func ExampleAlign_policies() {
	a, b := []byte("ACA"), []byte("ACCA")

	for _, p := range []smithwaterman.TracebackPolicy{smithwaterman.AllPaths, smithwaterman.FirstDirection} {
		res, _ := smithwaterman.Align(a, b, smithwaterman.WithPolicy(p))
		fmt.Printf("%s:", p)
		for _, al := range res.Alignments {
			fmt.Printf(" %s/%s", al.AlignedA('-'), al.AlignedB('-'))
		}
		fmt.Println()
	}
	// Output:
	// all: AC/AC CA/CA AC-A/ACCA
	// first: AC/AC CA/CA
}

// ExampleScore prints the maximal cells of the DP matrix.
func ExampleScore() {
	sm := smithwaterman.Score([]rune("GATTACA"), []rune("GCATGCU"), smithwaterman.DefaultCosts())
	fmt.Println(sm.Max(), sm.MaxCells())
	// Output:
	// 2 [{3 7} {4 3}]
}
