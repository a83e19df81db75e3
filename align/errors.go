package align

import "errors"

// Sentinel errors for alignment operations. Both describe configuration
// problems and are reported before any matrix cell is computed; a call
// that returns nil error always produced a fully-formed result.
var (
	// ErrUnknownStrategy indicates a Strategy other than Global or Local.
	ErrUnknownStrategy = errors.New("align: unknown alignment strategy")

	// ErrMissingScorePair indicates a substitution scheme that does not
	// cover some symbol pair present in the input sequences.
	ErrMissingScorePair = errors.New("align: substitution scheme missing a score pair")

	// ErrMatrixShape indicates a matrix whose dimensions do not match the
	// sequences handed to Backtrack.
	ErrMatrixShape = errors.New("align: matrix dimensions do not match sequences")
)
