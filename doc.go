// Package seqalign is an in-memory toolkit for pairwise sequence
// alignment and everyday nucleotide-sequence work.
//
// 🚀 What is seqalign?
//
//	A compact, pure-Go library bringing together:
//		• Alignment core: Needleman–Wunsch (global) & Smith–Waterman (local)
//		  with match/mismatch or substitution-matrix scoring
//		• Text rendering: fixed-width score matrices & match-bar alignments
//		• Ingestion: FASTA and FASTQ readers
//		• Statistics: base / GC / codon counts, complement, transcription
//		• Translation: the NCBI genetic-code table registry
//
// ✨ Why choose seqalign?
//
//   - Deterministic by construction – fixed tie-break rules, identical
//     output on every run with identical input
//   - Fail-fast – configuration problems surface before any matrix work
//   - Pure Go – no cgo, no hidden deps
//   - Inspectable – the full DP matrix is returned and renderable
//
// Everything is organized under four subpackages:
//
//	align/   — score schemes, matrix fill, backtrace, text rendering
//	fasta/   — FASTA / FASTQ record readers
//	gencode/ — immutable NCBI translation-table registry
//	seq/     — composition statistics & sequence transforms
//
// Quick ASCII example:
//
//	ACGTACGT          the local alignment of ACGTACGT
//	||||||||          against ACGTACGTACGT is the
//	ACGTACGT          perfectly matching substring
//
// Dive into the examples/ directory for runnable demos, and into each
// package's doc.go for the algorithmic details.
//
//	go get github.com/katalvlaran/seqalign
package seqalign
