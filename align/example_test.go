package align_test

import (
	"fmt"

	"github.com/katalvlaran/seqalign/align"
)

// ExampleAlign demonstrates a global alignment under the classic DNA
// substitution matrix (identity +5, complementary mismatch -4, other
// mismatch -3) with a gap penalty of -2.
func ExampleAlign() {
	scheme := align.NewSubstitutionScheme(align.NucleotideScores(), -2)

	a, _, err := align.Align("ACGT", "ACGT", scheme, align.Global)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(a)
	// Output:
	// ACGT
	// ||||
	// ACGT
	//
	// Score = 20
}

// ExampleAlign_local demonstrates Smith–Waterman alignment: the shorter
// sequence matches a substring of the longer one and the flanks are left
// unexplained.
func ExampleAlign_local() {
	scheme := align.NewScheme(2, -1, -2)

	a, _, err := align.Align("ACGTACGT", "ACGTACGTACGT", scheme, align.Local)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("score=%d\nA=%s\nB=%s\n", a.Score, a.A, a.B)
	// Output:
	// score=16
	// A=ACGTACGT
	// B=ACGTACGT
}

// ExampleBuildMatrix shows independent use of the matrix builder for
// callers that only need scores, not the alignment itself.
func ExampleBuildMatrix() {
	scheme := align.NewScheme(1, -1, -1)

	m, err := align.BuildMatrix("GATTACA", "GCATGCU", scheme, align.Global)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%dx%d, best=%d\n", m.Rows(), m.Cols(), m.At(m.Rows()-1, m.Cols()-1))
	// Output:
	// 8x8, best=0
}
