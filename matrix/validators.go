// SPDX-License-Identifier: MIT
// Package matrix: canonical validators shared across the library.
//
// Purpose:
//   - Provide a single source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape/finiteness checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their own context.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns ErrDimensionMismatch on any difference. Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateFinite scans every element and returns ErrNaNInf on the first
// NaN or ±Inf. Assumes m is not nil. Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}
