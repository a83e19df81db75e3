// Package align computes optimal pairwise alignments between symbol
// sequences with dynamic programming, supporting global (Needleman–Wunsch)
// and local (Smith–Waterman) strategies under a linear gap model.
//
// 🚀 What is pairwise alignment?
//
//	Given two sequences, alignment finds the highest-scoring way to match
//	them symbol by symbol, inserting gaps where one sequence has material
//	the other lacks.  It is the workhorse of:
//	  • DNA / RNA / protein homology search
//	  • Read mapping & variant calling pipelines
//	  • Fuzzy string matching and diffing in general
//
// ✨ Key features:
//   - Global (end-to-end) and Local (best substring) strategies
//   - match/mismatch scoring or an arbitrary substitution matrix
//   - deterministic backtrace (diagonal > up > left tie-break)
//   - full score matrix retained and renderable for inspection
//   - fixed-width text rendering of matrices and alignments
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	s := align.NewScheme(2, -1, -2)
//	a, m, err := align.Align("ACGTACGT", "ACGTACGTACGT", s, align.Local)
//	if err != nil {
//	  // handle ErrUnknownStrategy or ErrMissingScorePair
//	}
//	grid, _ := align.FormatMatrix("ACGTACGT", "ACGTACGTACGT", m)
//	fmt.Println(grid)
//	fmt.Println(a)
//
// Performance:
//
//   - Time:   O(M·N)
//   - Memory: O(M·N) — the matrix is kept whole so the optimal path can be
//     recovered and the matrix rendered; very long sequences are therefore
//     bounded by caller memory (no linear-space variant is provided).
//
// Alignment is a pure function: nothing is shared between calls, so
// concurrent calls with independent inputs need no locking.
package align
