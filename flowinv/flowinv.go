// SPDX-License-Identifier: MIT

package flowinv

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlopt/matrix"
)

// DefaultDepth is the recursion depth used for each diagonal seed.
const DefaultDepth = 5

// ErrNilMatrix is returned when Invert or Gap receives a nil matrix.
var ErrNilMatrix = errors.New("flowinv: nil matrix")

// flow carries the read-only source and the shared accumulation target of
// one Invert call. M×N source, N×M target.
type flow[T matrix.Float] struct {
	src    [][]T // source rows, copied once
	m, n   int
	result []T // row-major N×M accumulator: result[col*m+dest]
}

// Invert returns an N×M approximation of a generalized inverse of the M×N
// matrix a, truncated at depth levels of feedback.
//
// Implementation:
//   - Stage 1: collect every row view of a into a slice; allocate the N×M accumulator.
//   - Stage 2: for every row r (ascending) spread one unit of flow with
//     destination column r.
//   - Stage 3: materialize the accumulator as a Dense.
//
// A negative depth is treated as 0. The only error is a nil input.
//
// Complexity:
//   - Worst case O(M · (N·M)^depth) spreads; depth is small by construction.
func Invert[T matrix.Float](a *matrix.Dense[T], depth int) (*matrix.Dense[T], error) {
	if a == nil {
		return nil, fmt.Errorf("Invert: %w", ErrNilMatrix)
	}
	if depth < 0 {
		depth = 0
	}

	m, n := a.Shape()
	f := &flow[T]{src: make([][]T, m), m: m, n: n, result: make([]T, n*m)}
	for r := 0; r < m; r++ {
		row, err := a.Row(r)
		if err != nil {
			return nil, fmt.Errorf("Invert: %w", err)
		}
		f.src[r] = slices.Collect(row.All())
	}

	for r := 0; r < m; r++ {
		f.spread(r, r, 1, depth)
	}

	return matrix.FromFunc(n, m, func(i, j int) T { return f.result[i*m+j] }, matrix.WithNoValidateNaNInf())
}

// spread distributes factor over the positive entries of row and forwards
// each column's share through that column's negative entries.
// Accumulation order is fixed: columns ascending, and within a column the
// share is added before recursing into rows ascending.
func (f *flow[T]) spread(row, dest int, factor T, depth int) {
	src := f.src[row]

	var positiveSum T
	for _, v := range src {
		if v > 0 {
			positiveSum += v
		}
	}
	if positiveSum <= 0 {
		return
	}
	share := factor / positiveSum

	for col, v := range src {
		if v <= 0 {
			continue
		}
		f.result[col*f.m+dest] += share
		if depth == 0 {
			continue
		}
		for r := 0; r < f.m; r++ {
			if w := f.src[r][col]; w < 0 {
				f.spread(r, dest, -w*share, depth-1)
			}
		}
	}
}

// Gap returns the squared Frobenius distance ‖approx − exact‖².
//
// Errors:
//   - ErrNilMatrix, matrix.ErrDimensionMismatch.
func Gap[T matrix.Float](approx, exact *matrix.Dense[T]) (T, error) {
	if approx == nil || exact == nil {
		return 0, fmt.Errorf("Gap: %w", ErrNilMatrix)
	}
	d, err := matrix.Sub(approx, exact)
	if err != nil {
		return 0, fmt.Errorf("Gap: %w", err)
	}

	return d.NormSquared(), nil
}
