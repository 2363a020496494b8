// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0). Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MulTransposed where a.Cols != b.Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows signals that a [][]float64 ingestion source had rows of
	// unequal length; Dense storage requires a rectangle.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
