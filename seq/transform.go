package seq

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/seqalign/gencode"
)

var (
	// ErrBadSymbol indicates a symbol outside the DNA alphabet {A,T,G,C}.
	ErrBadSymbol = errors.New("seq: symbol outside the DNA alphabet")
	// ErrUnknownCodon indicates a codon the chosen genetic code cannot translate.
	ErrUnknownCodon = errors.New("seq: codon not present in translation table")
)

// Complement returns the base-wise DNA complement of s (A↔T, G↔C).
func Complement(s string) (string, error) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c, ok := complementOf(s[i])
		if !ok {
			return "", fmt.Errorf("%w: %q at position %d", ErrBadSymbol, s[i], i)
		}
		out[i] = c
	}

	return string(out), nil
}

// ReverseComplement returns the complement of s read 3'→5'.
func ReverseComplement(s string) (string, error) {
	out, err := Complement(s)
	if err != nil {
		return "", err
	}
	b := []byte(out)
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}

	return string(b), nil
}

// Transcribe returns the RNA transcript of a DNA coding strand: every T
// becomes U. Other symbols pass through untouched.
func Transcribe(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 'T' {
			return 'U'
		}

		return r
	}, s)
}

// Translate converts s codon by codon (frame 0) into a single-letter
// amino-acid string under genetic code t, rendering stop codons as '*'.
// A trailing partial codon is ignored, mirroring CodonCount. A codon
// absent from the table yields ErrUnknownCodon.
func Translate(s string, t gencode.Table) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s) / 3)
	for i := 0; i+3 <= len(s); i += 3 {
		codon := s[i : i+3]
		aa, ok := t.Translate(codon)
		if !ok {
			return "", fmt.Errorf("%w: %q at position %d", ErrUnknownCodon, codon, i)
		}
		sb.WriteByte(aa)
	}

	return sb.String(), nil
}

func complementOf(b byte) (byte, bool) {
	switch b {
	case 'A':
		return 'T', true
	case 'T':
		return 'A', true
	case 'G':
		return 'C', true
	case 'C':
		return 'G', true
	default:
		return 0, false
	}
}
