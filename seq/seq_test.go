package seq_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/gencode"
	"github.com/katalvlaran/seqalign/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBaseCount tallies symbols including non-canonical ones.
func TestBaseCount(t *testing.T) {
	counts := seq.BaseCount("AACGTN")
	assert.Equal(t, map[byte]int{'A': 2, 'C': 1, 'G': 1, 'T': 1, 'N': 1}, counts)
	assert.Empty(t, seq.BaseCount(""))
}

// TestGCContent checks the fraction and the empty-sequence convention.
func TestGCContent(t *testing.T) {
	assert.InDelta(t, 0.5, seq.GCContent("ACGT"), 1e-12)
	assert.InDelta(t, 1.0, seq.GCContent("GGCC"), 1e-12)
	assert.InDelta(t, 0.0, seq.GCContent("ATAT"), 1e-12)
	assert.Zero(t, seq.GCContent(""))
}

// TestCodonCount counts frame-0 codons and drops the partial tail.
func TestCodonCount(t *testing.T) {
	counts := seq.CodonCount("ATGATGTAAGG")
	assert.Equal(t, map[string]int{"ATG": 2, "TAA": 1}, counts, "trailing GG must be ignored")
}

// TestComplement covers the involution property and invalid symbols.
func TestComplement(t *testing.T) {
	c, err := seq.Complement("ACGT")
	require.NoError(t, err)
	assert.Equal(t, "TGCA", c)

	back, err := seq.Complement(c)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", back, "complement must be an involution")

	_, err = seq.Complement("ACGU")
	assert.ErrorIs(t, err, seq.ErrBadSymbol)
}

// TestReverseComplement checks the canonical example.
func TestReverseComplement(t *testing.T) {
	rc, err := seq.ReverseComplement("AAGCT")
	require.NoError(t, err)
	assert.Equal(t, "AGCTT", rc)
}

// TestTranscribe replaces T with U and leaves the rest alone.
func TestTranscribe(t *testing.T) {
	assert.Equal(t, "ACGU", seq.Transcribe("ACGT"))
	assert.Equal(t, "UUUU", seq.Transcribe("TTTT"))
	assert.Equal(t, "", seq.Transcribe(""))
}

// TestTranslate runs a short ORF through the standard code.
func TestTranslate(t *testing.T) {
	std, err := gencode.Lookup(1)
	require.NoError(t, err)

	got, err := seq.Translate("ATGTTTGGGTAA", std)
	require.NoError(t, err)
	assert.Equal(t, "MFG*", got, "Met-Phe-Gly-stop")

	got, err = seq.Translate("ATGTT", std)
	require.NoError(t, err)
	assert.Equal(t, "M", got, "partial trailing codon must be ignored")

	_, err = seq.Translate("ATGNNN", std)
	assert.ErrorIs(t, err, seq.ErrUnknownCodon)
}

// TestTranslate_MitochondrialDiffers verifies the table parameter is
// actually honored.
func TestTranslate_MitochondrialDiffers(t *testing.T) {
	std, err := gencode.Lookup(1)
	require.NoError(t, err)
	vertMito, err := gencode.Lookup(2)
	require.NoError(t, err)

	stdAA, err := seq.Translate("TGA", std)
	require.NoError(t, err)
	mitoAA, err := seq.Translate("TGA", vertMito)
	require.NoError(t, err)
	assert.Equal(t, "*", stdAA)
	assert.Equal(t, "W", mitoAA)
}
