package align_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormatMatrix_Golden pins the exact fixed-width layout: header with
// blank corner, '-' placeholder and column symbols, then labelled rows,
// every field right-justified to width 5.
func TestFormatMatrix_Golden(t *testing.T) {
	s := align.NewScheme(1, -1, -2)
	m, err := align.BuildMatrix("AG", "A", s, align.Global)
	require.NoError(t, err)

	want := "" +
		"         -    A\n" +
		"    -    0   -2\n" +
		"    A   -2    1\n" +
		"    G   -4   -1\n"
	got, err := align.FormatMatrix("AG", "A", m)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestFormatMatrix_ShapeMismatch rejects a matrix built for different
// sequences instead of rendering out of step.
func TestFormatMatrix_ShapeMismatch(t *testing.T) {
	s := align.NewScheme(1, -1, -2)
	m, err := align.BuildMatrix("AG", "A", s, align.Global)
	require.NoError(t, err)

	_, err = align.FormatMatrix("ACGT", "A", m)
	assert.ErrorIs(t, err, align.ErrMatrixShape)
	_, err = align.FormatMatrix("AG", "ACGT", m)
	assert.ErrorIs(t, err, align.ErrMatrixShape)
}

// TestFormatMatrix_EmptySequence renders the degenerate single-row
// matrix of an empty first sequence.
func TestFormatMatrix_EmptySequence(t *testing.T) {
	s := align.NewScheme(2, -1, -1)
	m, err := align.BuildMatrix("", "ACGT", s, align.Global)
	require.NoError(t, err)

	want := "" +
		"         -    A    C    G    T\n" +
		"    -    0   -1   -2   -3   -4\n"
	got, err := align.FormatMatrix("", "ACGT", m)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestAlignment_String pins the four-line alignment rendering with
// match bar and score footer.
func TestAlignment_String(t *testing.T) {
	s := align.NewScheme(2, -1, -2)
	a, _, err := align.Align("ACGTACGT", "ACGTACGTACGT", s, align.Local)
	require.NoError(t, err)

	want := "ACGTACGT\n||||||||\nACGTACGT\n\nScore = 16"
	assert.Equal(t, want, a.String())
}

// TestAlignment_StringMismatchBar verifies that the match bar leaves a
// space wherever the aligned symbols differ, including at gaps.
func TestAlignment_StringMismatchBar(t *testing.T) {
	a := align.Alignment{A: "AC-T", B: "AGGT", Score: 3}

	want := "AC-T\n|  |\nAGGT\n\nScore = 3"
	assert.Equal(t, want, a.String())
}
