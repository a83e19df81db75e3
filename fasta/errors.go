package fasta

import "errors"

var (
	// ErrEmptyInput indicates the input contained no records at all.
	ErrEmptyInput = errors.New("fasta: input contains no records")
	// ErrMissingHeader indicates sequence data appeared before any '>' header.
	ErrMissingHeader = errors.New("fasta: sequence data before first header")
	// ErrBadFormat indicates a structurally invalid FASTQ record.
	ErrBadFormat = errors.New("fasta: malformed FASTQ record")
)
