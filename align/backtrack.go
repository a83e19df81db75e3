package align

// Backtrack walks a filled score matrix backwards to recover the optimal
// alignment of a against b and its score.
//
// Start position:
//
//	Global: bottom-right cell (m, n)
//	Local:  the matrix maximum; ties resolve to the first maximum in
//	        row-major scan order
//
// At each interior cell the move whose recomputed score explains the
// current value is taken, with fixed priority diagonal > up > left.
// Multiple optimal paths can exist, and this priority order is what
// makes the emitted alignment reproducible, so it must not change.
//
// Global termination flushes whatever prefix of either sequence remains
// unconsumed against gaps, covering both inputs end to end. Local
// termination stops at the first zero cell (or a boundary) with no
// flush: the output is exactly the traced substring pair.
func Backtrack(a, b string, m *Matrix, s Scheme, st Strategy) (Alignment, error) {
	if err := st.validate(); err != nil {
		return Alignment{}, err
	}
	if m.rows != len(a)+1 || m.cols != len(b)+1 {
		return Alignment{}, ErrMatrixShape
	}
	if err := s.validate(a, b); err != nil {
		return Alignment{}, err
	}

	i, j := len(a), len(b)
	var score int
	if st == Local {
		score, i, j = m.argmax()
	} else {
		score = m.At(i, j)
	}

	// Pairs are discovered end-to-start and reversed once at the end.
	outA := make([]byte, 0, i+j)
	outB := make([]byte, 0, i+j)

	for i > 0 && j > 0 {
		cur := m.At(i, j)
		if st == Local && cur == 0 {
			break
		}
		sc, _ := s.Score(a[i-1], b[j-1]) // coverage checked above
		switch {
		case cur == m.At(i-1, j-1)+sc:
			outA = append(outA, a[i-1])
			outB = append(outB, b[j-1])
			i, j = i-1, j-1
		case cur == m.At(i-1, j)+s.gap:
			outA = append(outA, a[i-1])
			outB = append(outB, GapSymbol)
			i--
		default:
			outA = append(outA, GapSymbol)
			outB = append(outB, b[j-1])
			j--
		}
	}

	if st == Global {
		for ; i > 0; i-- {
			outA = append(outA, a[i-1])
			outB = append(outB, GapSymbol)
		}
		for ; j > 0; j-- {
			outA = append(outA, GapSymbol)
			outB = append(outB, b[j-1])
		}
	}

	reverseBytes(outA)
	reverseBytes(outB)

	return Alignment{A: string(outA), B: string(outB), Score: score, Strategy: st}, nil
}

// reverseBytes reverses s in place.
func reverseBytes(s []byte) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
