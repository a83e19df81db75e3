package align

// Align is the single entry point for pairwise alignment: it validates
// the configuration, fills the score matrix, then backtracks the optimal
// path. The matrix is returned alongside the result so callers can
// inspect or render it.
//
// Align is a pure function: no shared state, byte-identical output for
// identical inputs. Empty sequences are valid, not errors — Global
// alignment against an empty sequence yields an all-gap alignment,
// Local yields score 0 with an empty aligned pair.
func Align(a, b string, s Scheme, st Strategy) (Alignment, *Matrix, error) {
	m, err := BuildMatrix(a, b, s, st)
	if err != nil {
		return Alignment{}, nil, err
	}
	res, err := Backtrack(a, b, m, s, st)
	if err != nil {
		return Alignment{}, nil, err
	}

	return res, m, nil
}
