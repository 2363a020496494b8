// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives used by the
// lowrank factorization engine.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix backed by a single flat slice for
//     cache friendliness, with strict bounds and finiteness checks on its
//     public mutators.
//   - Construction helpers (NewDense, NewDenseFromRows) that validate shape
//     and reject NaN/±Inf at ingestion.
//   - The operations the factorizer needs: MulTransposed (A·Bᵗ) and RowDot
//     (dot product of two stored rows).
//   - Validators shared across the library (ValidateNotNil, ValidateSameShape,
//     ValidateFinite) returning sentinel errors matched via errors.Is.
//
// Dense matrices here are small-to-medium working state (ratings and factor
// matrices), so every operation favors clarity and determinism over
// micro-optimization. All checks are pure and allocate nothing.
//
// See the examples in this package and in factorize for usage patterns.
package matrix
