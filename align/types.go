// Package align core types: strategies, scoring schemes and results.
package align

import "fmt"

// GapSymbol is the marker interleaved into aligned output where one
// sequence has no counterpart symbol.
const GapSymbol byte = '-'

// Strategy selects matrix-boundary initialization, the recurrence floor
// and backtrace termination rules.
type Strategy int

const (
	// Global performs end-to-end alignment (Needleman–Wunsch): every
	// symbol of both sequences is matched or gapped.
	Global Strategy = iota

	// Local finds the highest-scoring substring pair (Smith–Waterman),
	// ignoring unrelated flanking regions.
	Local
)

// String returns a human-readable strategy name.
func (st Strategy) String() string {
	switch st {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return fmt.Sprintf("Strategy(%d)", int(st))
	}
}

// validate reports ErrUnknownStrategy for values outside {Global, Local}.
func (st Strategy) validate() error {
	if st != Global && st != Local {
		return fmt.Errorf("%w: %s", ErrUnknownStrategy, st)
	}

	return nil
}

// Pair is an ordered symbol pair keying a substitution matrix entry.
type Pair [2]byte

// Scheme resolves a score for any symbol pair and supplies the gap
// penalty. It is immutable once constructed. A Scheme backed by a
// substitution matrix must cover every pair of symbols occurring in the
// inputs; coverage is checked up front by BuildMatrix and Backtrack
// (lookups succeed in either stored order, so a symmetric alphabet needs
// each pair stored only once).
type Scheme struct {
	match, mismatch int
	gap             int
	sub             map[Pair]int // nil ⇒ equality scoring
}

// NewScheme builds a Scheme scoring by symbol equality: match for equal
// symbols, mismatch otherwise, gap per inserted/deleted symbol (pure
// linear model — a run of k gaps costs exactly k·gap).
func NewScheme(match, mismatch, gap int) Scheme {
	return Scheme{match: match, mismatch: mismatch, gap: gap}
}

// NewSubstitutionScheme builds a Scheme scoring via an explicit
// substitution matrix. The map is copied, so later caller mutation does
// not affect the scheme.
func NewSubstitutionScheme(scores map[Pair]int, gap int) Scheme {
	sub := make(map[Pair]int, len(scores))
	for p, v := range scores {
		sub[p] = v
	}

	return Scheme{gap: gap, sub: sub}
}

// Score resolves the score for aligning a against b. For substitution
// schemes ok is false when neither (a,b) nor (b,a) is mapped; for
// equality schemes ok is always true.
func (s Scheme) Score(a, b byte) (score int, ok bool) {
	if s.sub == nil {
		if a == b {
			return s.match, true
		}

		return s.mismatch, true
	}
	if v, found := s.sub[Pair{a, b}]; found {
		return v, true
	}
	if v, found := s.sub[Pair{b, a}]; found {
		return v, true
	}

	return 0, false
}

// Gap returns the per-symbol gap penalty.
func (s Scheme) Gap() int { return s.gap }

// validate checks substitution coverage for every symbol pair that can
// occur between a and b, so a lookup failure surfaces as a configuration
// error before any fill work instead of mid-loop.
func (s Scheme) validate(a, b string) error {
	if s.sub == nil {
		return nil
	}
	var seenA, seenB [256]bool
	for i := 0; i < len(a); i++ {
		seenA[a[i]] = true
	}
	for j := 0; j < len(b); j++ {
		seenB[b[j]] = true
	}
	for x := 0; x < 256; x++ {
		if !seenA[x] {
			continue
		}
		for y := 0; y < 256; y++ {
			if !seenB[y] {
				continue
			}
			if _, ok := s.Score(byte(x), byte(y)); !ok {
				return fmt.Errorf("%w: (%c,%c)", ErrMissingScorePair, x, y)
			}
		}
	}

	return nil
}

// NucleotideScores returns the classic DNA substitution matrix used
// throughout this module's examples: identical bases score 5,
// complementary mismatches (A↔T, G↔C) score -4, all other mismatches -3.
func NucleotideScores() map[Pair]int {
	const bases = "ATGC"
	scores := make(map[Pair]int, len(bases)*len(bases))
	for i := 0; i < len(bases); i++ {
		for j := 0; j < len(bases); j++ {
			b1, b2 := bases[i], bases[j]
			switch {
			case b1 == b2:
				scores[Pair{b1, b2}] = 5
			case complementary(b1, b2):
				scores[Pair{b1, b2}] = -4
			default:
				scores[Pair{b1, b2}] = -3
			}
		}
	}

	return scores
}

func complementary(a, b byte) bool {
	switch {
	case a == 'A' && b == 'T', a == 'T' && b == 'A':
		return true
	case a == 'G' && b == 'C', a == 'C' && b == 'G':
		return true
	default:
		return false
	}
}

// Alignment is the immutable result of a backtrace: two equal-length
// aligned strings (original symbols interleaved with GapSymbol), the
// alignment score and the strategy that produced it.
type Alignment struct {
	A, B     string
	Score    int
	Strategy Strategy
}
