// SPDX-License-Identifier: MIT
// Package matrix: the dense kernels consumed by the factorization engine.
//
// Only the operations the library actually uses live here; this is not a
// general linear-algebra surface. Both kernels validate through the shared
// validators and return plain sentinels wrapped with operation context.

package matrix

import "fmt"

// opErrorf wraps an underlying sentinel with operation context.
func opErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}

// MulTransposed computes A·Bᵗ for two matrices sharing a column count:
// a is r_a×k, b is r_b×k, and the result is r_a×r_b with
// out[i][j] = Σ_t a[i][t]·b[j][t].
//
// This is the reconstruction product of a factor pair (U·Mᵗ) without
// materializing the transpose of b.
//
// Errors: ErrNilMatrix for nil operands, ErrDimensionMismatch when
// a.Cols != b.Cols.
// Complexity: O(r_a · r_b · k) time, O(r_a · r_b) memory.
func MulTransposed(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf("MulTransposed", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf("MulTransposed", err)
	}
	if a.c != b.c {
		return nil, opErrorf("MulTransposed", ErrDimensionMismatch)
	}

	out := &Dense{r: a.r, c: b.r, data: make([]float64, a.r*b.r)}
	var i, j, t int
	var sum float64
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.r; j++ {
			sum = 0
			for t = 0; t < a.c; t++ {
				sum += a.data[i*a.c+t] * b.data[j*b.c+t]
			}
			out.data[i*out.c+j] = sum
		}
	}

	return out, nil
}

// RowDot computes the dot product of row i of a with row j of b.
// It is the single-entry prediction kernel: with user factors a=U and item
// factors b=M, RowDot(U, i, M, j) is the model's estimate of rating (i, j).
//
// Errors: ErrNilMatrix for nil operands, ErrDimensionMismatch when
// a.Cols != b.Cols, ErrOutOfRange for invalid row indices.
// Complexity: O(k) time, zero allocations.
func RowDot(a *Dense, i int, b *Dense, j int) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, opErrorf("RowDot", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, opErrorf("RowDot", err)
	}
	if a.c != b.c {
		return 0, opErrorf("RowDot", ErrDimensionMismatch)
	}
	if i < 0 || i >= a.r {
		return 0, fmt.Errorf("matrix.RowDot: row %d of a: %w", i, ErrOutOfRange)
	}
	if j < 0 || j >= b.r {
		return 0, fmt.Errorf("matrix.RowDot: row %d of b: %w", j, ErrOutOfRange)
	}

	var sum float64
	var t int
	for t = 0; t < a.c; t++ {
		sum += a.data[i*a.c+t] * b.data[j*b.c+t]
	}

	return sum, nil
}
