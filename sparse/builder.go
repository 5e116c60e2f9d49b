// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
	"sort"
)

// coord addresses a single cell of a square matrix.
type coord struct {
	row, col int
}

// Builder accumulates scattered (row, col) contributions for one n×n matrix.
//
// Add is additive: repeated writes into the same cell sum rather than
// overwrite, which is exactly the semantics operator assembly needs when two
// paths feed the same daughter. A Builder is cheap, single-goroutine state;
// freeze it with Compress once accumulation is complete.
type Builder struct {
	n     int
	cells map[coord]float64
}

// NewBuilder returns an empty accumulation builder for an n×n matrix.
// Complexity: O(1)
func NewBuilder(n int) (*Builder, error) {
	// Fail-fast on nonsensical dimension
	if n <= 0 {
		return nil, fmt.Errorf("NewBuilder: n=%d: %w", n, ErrBadShape)
	}

	return &Builder{n: n, cells: make(map[coord]float64)}, nil
}

// Dim returns the matrix dimension n.
func (b *Builder) Dim() int { return b.n }

// NNZ returns the number of distinct cells touched so far.
// Explicitly accumulated zeros count as touched.
func (b *Builder) NNZ() int { return len(b.cells) }

// Add accumulates v into cell (r, c).
//
// Returns ErrNilMatrix on a nil receiver, ErrOutOfRange when an index is
// outside [0, n), and ErrNaNInf when v is not finite. The cell keeps its
// previous value when an error is returned.
// Complexity: O(1)
func (b *Builder) Add(r, c int, v float64) error {
	if b == nil {
		return fmt.Errorf("Add: %w", ErrNilMatrix)
	}
	if r < 0 || r >= b.n || c < 0 || c >= b.n {
		return fmt.Errorf("Add: (%d,%d) outside %dx%d: %w", r, c, b.n, b.n, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Add: value at (%d,%d): %w", r, c, ErrNaNInf)
	}
	b.cells[coord{r, c}] += v

	return nil
}

// Compress freezes the accumulated cells into an immutable CSR matrix.
//
// Entries are ordered by (row, col); map iteration order never leaks into
// the result, so equal accumulation states compress bit-identically. The
// builder stays valid and may keep accumulating after a Compress.
// Complexity: O(nnz·log nnz)
func (b *Builder) Compress() *CSR {
	// Stage 1: collect and order the touched cells
	keys := make([]coord, 0, len(b.cells))
	for k := range b.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].row != keys[j].row {
			return keys[i].row < keys[j].row
		}

		return keys[i].col < keys[j].col
	})

	// Stage 2: lay out CSR arrays
	m := &CSR{
		n:      b.n,
		rowPtr: make([]int, b.n+1),
		colInd: make([]int, len(keys)),
		val:    make([]float64, len(keys)),
	}
	for i, k := range keys {
		m.rowPtr[k.row+1]++
		m.colInd[i] = k.col
		m.val[i] = b.cells[k]
	}
	for r := 0; r < b.n; r++ {
		m.rowPtr[r+1] += m.rowPtr[r]
	}

	return m
}
