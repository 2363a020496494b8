// Package factorize - caller-side helpers around the training loop:
// factor initialization and full reconstruction.
package factorize

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lowrank/matrix"
)

// RandomFactors builds a rows×k factor matrix filled with uniform values in
// (0, 1) — the conventional small-positive initialization for latent-factor
// SGD. The same RNG policy as Factorize applies: rng==nil falls back to the
// fixed deterministic default stream, so results stay reproducible.
//
// Errors: ErrBadLatentDim for k < 1, and the matrix sentinel
// ErrInvalidDimensions for rows < 1.
// Complexity: O(rows·k).
func RandomFactors(rows, k int, rng *rand.Rand) (*matrix.Dense, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLatentDim, k)
	}
	f, err := matrix.NewDense(rows, k)
	if err != nil {
		return nil, err
	}

	src := rng
	if src == nil {
		src = rngFromSeed(0)
	}

	var (
		i, t int
		row  []float64
	)
	for i = 0; i < rows; i++ {
		if row, err = f.Row(i); err != nil {
			return nil, err
		}
		for t = 0; t < k; t++ {
			row[t] = src.Float64()
		}
	}

	return f, nil
}

// Reconstruct computes the full prediction matrix U·Mᵗ from a trained factor
// pair: entry (i, j) is the model's estimate for user i and item j, including
// the cells that were unobserved during training.
//
// Errors: ErrNilInput for nil factors, and the matrix sentinel
// ErrDimensionMismatch when the factor pair disagrees on K.
// Complexity: O(I·J·K).
func Reconstruct(u, m *matrix.Dense) (*matrix.Dense, error) {
	if matrix.ValidateNotNil(u) != nil || matrix.ValidateNotNil(m) != nil {
		return nil, ErrNilInput
	}

	return matrix.MulTransposed(u, m)
}
