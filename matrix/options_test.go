// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/matrix"
)

// TestDefaultOptions_Documented verifies the snapshot equals the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.DefaultOptionsSnapshot_TestOnly()
	assert.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)
	assert.Equal(t, matrix.DefaultPivotTolerance, o.PivotTol)
	assert.Equal(t, o, matrix.GatherOptionsSnapshot_TestOnly())
}

// TestGatherOptions_LastWriterWins ensures each Option toggles exactly its field.
func TestGatherOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	assert.True(t, o.ValidateNaNInf)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	assert.False(t, o.ValidateNaNInf)
	assert.Equal(t, matrix.DefaultPivotTolerance, o.PivotTol, "untouched field keeps its default")

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithPivotTolerance(1e-3), nil, matrix.WithPivotTolerance(1e-9))
	assert.Equal(t, 1e-9, o.PivotTol)
	assert.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)
}

func TestWithPivotTolerance_PanicsOnInvalid(t *testing.T) {
	for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.Panics(t, func() { matrix.WithPivotTolerance(tol) }, "tol=%v", tol)
	}
	assert.NotPanics(t, func() { matrix.WithPivotTolerance(0) })
}

// TestNumericPolicy_Propagates checks that kernel results inherit the
// policy of their operand.
func TestNumericPolicy_Propagates(t *testing.T) {
	relaxed, err := matrix.NewDense[float64](2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.Inf(1)))

	scaled, err := matrix.Scale(relaxed, 2)
	require.NoError(t, err)
	assert.False(t, matrix.ValidatesNaNInf_TestOnly(scaled))
	assert.False(t, matrix.ValidatesNaNInf_TestOnly(relaxed.Clone()))

	strict, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)
	assert.True(t, matrix.ValidatesNaNInf_TestOnly(strict))
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}
