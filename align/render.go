package align

import (
	"fmt"
	"strings"
)

// cellWidth is the fixed field width of every label and cell in the
// matrix rendering. Part of the output compatibility contract.
const cellWidth = 5

// FormatMatrix renders m as fixed-width text for inspection: a header
// line with a blank corner field, a '-' placeholder, then each symbol of
// b; followed by one line per row beginning with the row label ('-' for
// row 0, else the matching symbol of a) and the row's cells. Every field
// is right-justified to width 5 with no separators. Each line ends with
// a newline.
//
// A matrix not built for a and b is rejected with ErrMatrixShape.
func FormatMatrix(a, b string, m *Matrix) (string, error) {
	if m.rows != len(a)+1 || m.cols != len(b)+1 {
		return "", ErrMatrixShape
	}

	var sb strings.Builder
	sb.Grow((m.rows + 1) * (m.cols + 2) * cellWidth)

	fmt.Fprintf(&sb, "%5s%5c", "", GapSymbol)
	for j := 0; j < len(b); j++ {
		fmt.Fprintf(&sb, "%5c", b[j])
	}
	sb.WriteByte('\n')

	for i := 0; i < m.rows; i++ {
		if i == 0 {
			fmt.Fprintf(&sb, "%5c", GapSymbol)
		} else {
			fmt.Fprintf(&sb, "%5c", a[i-1])
		}
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&sb, "%5d", m.At(i, j))
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// String renders the alignment as four lines: aligned A, a match bar
// ('|' where the aligned symbols are equal, space otherwise), aligned B,
// then a blank line and "Score = N".
func (al Alignment) String() string {
	bar := make([]byte, len(al.A))
	for i := range bar {
		if i < len(al.B) && al.A[i] == al.B[i] {
			bar[i] = '|'
		} else {
			bar[i] = ' '
		}
	}

	return strings.Join([]string{al.A, string(bar), al.B, "", fmt.Sprintf("Score = %d", al.Score)}, "\n")
}
