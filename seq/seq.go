package seq

// BaseCount tallies every symbol occurring in s.
func BaseCount(s string) map[byte]int {
	counts := make(map[byte]int)
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}

	return counts
}

// GCContent returns the fraction of G and C symbols in s, in [0,1].
// An empty sequence has GC content 0.
func GCContent(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 'G' || s[i] == 'C' {
			gc++
		}
	}

	return float64(gc) / float64(len(s))
}

// CodonCount tallies in-frame (frame 0) codons of s. A trailing partial
// codon is ignored.
func CodonCount(s string) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+3 <= len(s); i += 3 {
		counts[s[i:i+3]]++
	}

	return counts
}
