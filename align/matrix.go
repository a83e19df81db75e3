package align

// Matrix is the (m+1)×(n+1) dynamic-programming score grid: cell (i,j)
// holds the optimal score of aligning the length-i prefix of A against
// the length-j prefix of B under the chosen strategy. Cells live in one
// contiguous row-major buffer for cache locality in the fill loop. A
// Matrix is never mutated after BuildMatrix returns it.
type Matrix struct {
	rows, cols int
	cells      []int
}

// Rows returns the row count, len(A)+1.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count, len(B)+1.
func (m *Matrix) Cols() int { return m.cols }

// At returns the score at row i, column j.
func (m *Matrix) At(i, j int) int { return m.cells[i*m.cols+j] }

// argmax returns the maximum cell value and its position, taking the
// first maximum in row-major scan order so ties resolve identically on
// every run.
func (m *Matrix) argmax() (max, row, col int) {
	max = m.cells[0]
	for k, v := range m.cells {
		if v > max {
			max, row, col = v, k/m.cols, k%m.cols
		}
	}

	return max, row, col
}

// BuildMatrix fills the score matrix for aligning a against b.
//
// Boundary initialization:
//
//	Global: M[i][0] = i·gap, M[0][j] = j·gap (prefix aligned to gaps)
//	Local:  row 0 and column 0 are zero
//
// Recurrence, row-major, for i=1..m, j=1..n:
//
//	diag = M[i-1][j-1] + score(a[i-1], b[j-1])
//	up   = M[i-1][j]   + gap
//	left = M[i][j-1]   + gap
//	Global: M[i][j] = max(diag, up, left)
//	Local:  M[i][j] = max(0, diag, up, left)
//
// Strategy and substitution-matrix coverage are validated before any
// cell is computed; on error no partial matrix is returned.
//
// Complexity: O(m·n) time and memory.
func BuildMatrix(a, b string, s Scheme, st Strategy) (*Matrix, error) {
	if err := st.validate(); err != nil {
		return nil, err
	}
	if err := s.validate(a, b); err != nil {
		return nil, err
	}

	rows, cols := len(a)+1, len(b)+1
	m := &Matrix{rows: rows, cols: cols, cells: make([]int, rows*cols)}

	if st == Global {
		for j := 1; j < cols; j++ {
			m.cells[j] = j * s.gap
		}
		for i := 1; i < rows; i++ {
			m.cells[i*cols] = i * s.gap
		}
	}

	for i := 1; i < rows; i++ {
		row, prev := i*cols, (i-1)*cols
		for j := 1; j < cols; j++ {
			sc, _ := s.Score(a[i-1], b[j-1]) // coverage checked above
			best := m.cells[prev+j-1] + sc
			if up := m.cells[prev+j] + s.gap; up > best {
				best = up
			}
			if left := m.cells[row+j-1] + s.gap; left > best {
				best = left
			}
			if st == Local && best < 0 {
				best = 0
			}
			m.cells[row+j] = best
		}
	}

	return m, nil
}
