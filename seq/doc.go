// Package seq provides composition statistics and standard transforms
// for nucleotide sequences: base/GC/codon counting, complementation,
// transcription and translation.
//
// These utilities are independent consumers of raw sequences — they
// never call into the align package and the aligner never calls them.
package seq
