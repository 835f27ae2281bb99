// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlopt/matrix"
	"github.com/stretchr/testify/require"
)

// MustRows BUILDS a *Dense from row literals or fails the test.
func MustRows[T matrix.Float](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err, "FromRows(%v)", rows)

	return m
}

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense[T matrix.Float](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt[T matrix.Float](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact ASSERTS m equals want element for element (exact float comparison).
func CompareExact[T matrix.Float](tb testing.TB, want [][]T, m *matrix.Dense[T]) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(tb, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equal(tb, want[i][j], MustAt(tb, m, i, j), "element [%d,%d]", i, j)
		}
	}
}

// RandomDense FILLS an r×c matrix with values in [-1, 1) from a fixed seed.
func RandomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.FromFunc(r, c, func(_, _ int) float64 { return rng.Float64()*2 - 1 })
	require.NoError(tb, err)

	return m
}

// RandomDense32 is RandomDense for float32 fixtures.
func RandomDense32(tb testing.TB, r, c int, seed int64) *matrix.Dense[float32] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.FromFunc(r, c, func(_, _ int) float32 { return rng.Float32()*2 - 1 })
	require.NoError(tb, err)

	return m
}
