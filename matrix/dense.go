// SPDX-License-Identifier: MIT
// Package matrix: Dense storage and element access.
//
// Dense is a concrete row-major float64 matrix storing elements in a flat
// slice for performance and cache friendliness. Public mutators enforce the
// numeric policy (finite values only); internal hot paths inside the library
// go through Row, which exposes the backing storage of a single row.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying sentinel with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions unless rows > 0 and cols > 0.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from a slice of rows, copying every value.
// Validation order: non-empty shape (ErrInvalidDimensions), rectangular input
// (ErrRaggedRows), finite entries (ErrNaNInf). The source slices are never
// retained; mutating them afterwards does not affect the matrix.
// Complexity: O(r*c) time and memory.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i, src := range rows {
		if len(src) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d entries, want %d: %w",
				i, len(src), c, ErrRaggedRows)
		}
		for j, v := range src {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("NewDenseFromRows", i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols) in one call. Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange for invalid indices. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange for invalid indices and ErrNaNInf for non-finite v;
// the numeric policy applies only at this public boundary. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Row returns the backing slice of row i, NOT a copy: writes through the
// returned slice mutate the matrix and bypass the Set finiteness policy.
// This is the intended hot path for numerical kernels that own the matrix
// (divergence under a too-large learning rate must stay observable).
// Returns ErrOutOfRange for an invalid row index. Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c], nil
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Do calls f for every element in row-major order, stopping early if f
// returns false. Deterministic iteration order is part of the contract;
// the factorizer relies on it to build a stable observed set.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[i*m.c+j]) {
				return
			}
		}
	}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
