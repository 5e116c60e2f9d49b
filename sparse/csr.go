// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// CSR is an immutable square sparse matrix in compressed sparse row form.
//
// Row r's entries live at positions rowPtr[r]..rowPtr[r+1] of colInd/val,
// with colInd ascending within each row. A CSR is produced by
// Builder.Compress, never mutated afterward, and therefore safe to share
// across goroutines without synchronization.
type CSR struct {
	n      int
	rowPtr []int
	colInd []int
	val    []float64
}

// Dim returns the matrix dimension n.
func (m *CSR) Dim() int { return m.n }

// NNZ returns the number of stored entries (explicit zeros included).
func (m *CSR) NNZ() int { return len(m.val) }

// At returns the value at (r, c); absent cells read as 0.
// Complexity: O(row nnz)
func (m *CSR) At(r, c int) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("At: %w", ErrNilMatrix)
	}
	if r < 0 || r >= m.n || c < 0 || c >= m.n {
		return 0, fmt.Errorf("At: (%d,%d) outside %dx%d: %w", r, c, m.n, m.n, ErrOutOfRange)
	}
	for i := m.rowPtr[r]; i < m.rowPtr[r+1]; i++ {
		if m.colInd[i] == c {
			return m.val[i], nil
		}
	}

	return 0, nil
}

// Row returns the column indices and values stored for row r.
// The returned slices alias internal storage and MUST NOT be mutated.
// Complexity: O(1)
func (m *CSR) Row(r int) ([]int, []float64, error) {
	if m == nil {
		return nil, nil, fmt.Errorf("Row: %w", ErrNilMatrix)
	}
	if r < 0 || r >= m.n {
		return nil, nil, fmt.Errorf("Row: %d outside %d rows: %w", r, m.n, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[r], m.rowPtr[r+1]

	return m.colInd[lo:hi], m.val[lo:hi], nil
}

// MulVec computes y = M·x.
// Complexity: O(nnz)
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("MulVec: %w", ErrNilMatrix)
	}
	if len(x) != m.n {
		return nil, fmt.Errorf("MulVec: len(x)=%d, want %d: %w", len(x), m.n, ErrDimensionMismatch)
	}
	y := make([]float64, m.n)
	for r := 0; r < m.n; r++ {
		var sum float64
		for i := m.rowPtr[r]; i < m.rowPtr[r+1]; i++ {
			sum += m.val[i] * x[m.colInd[i]]
		}
		y[r] = sum
	}

	return y, nil
}

// Dense expands the matrix into a freshly allocated [][]float64.
// Intended for tests and debugging; production paths stay in CSR.
// Complexity: O(n² + nnz)
func (m *CSR) Dense() [][]float64 {
	out := make([][]float64, m.n)
	for r := 0; r < m.n; r++ {
		out[r] = make([]float64, m.n)
		for i := m.rowPtr[r]; i < m.rowPtr[r+1]; i++ {
			out[r][m.colInd[i]] = m.val[i]
		}
	}

	return out
}

// Equal reports exact structural and bit-level value equality with other.
// Used by determinism and parallel-equivalence tests; no epsilon is applied.
func (m *CSR) Equal(other *CSR) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n || len(m.val) != len(other.val) {
		return false
	}
	for r := 0; r <= m.n; r++ {
		if m.rowPtr[r] != other.rowPtr[r] {
			return false
		}
	}
	for i := range m.val {
		if m.colInd[i] != other.colInd[i] || m.val[i] != other.val[i] {
			return false
		}
	}

	return true
}
