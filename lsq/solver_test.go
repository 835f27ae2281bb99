// SPDX-License-Identifier: MIT
package lsq_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvlopt/lsq"
	"github.com/katalvlaran/lvlopt/matrix"
)

func rows32(t testing.TB, rows [][]float32) *matrix.Dense[float32] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func at[T matrix.Float](t testing.TB, v *matrix.Dense[T], i int) T {
	t.Helper()
	x, err := v.Vec(i)
	require.NoError(t, err)

	return x
}

// twoByTwo is the consistent system 2x+y = 3, 3x = 3 with solution (1, 1).
func twoByTwo(t testing.TB) (a, b *matrix.Dense[float32]) {
	return rows32(t, [][]float32{{2, 1}, {3, 0}}), matrix.NewVector[float32](3, 3)
}

// wrongSlope reports f(x) = x − 1 with the Jacobian sign flipped, so every
// proposed direction points uphill.
type wrongSlope struct{}

func (wrongSlope) Dims() (int, int) { return 1, 1 }

func (wrongSlope) Residual(x *matrix.Dense[float64]) (*matrix.Dense[float64], error) {
	v, err := x.Vec(0)
	if err != nil {
		return nil, err
	}

	return matrix.NewVector(v - 1), nil
}

func (wrongSlope) Jacobian(*matrix.Dense[float64]) (*matrix.Dense[float64], error) {
	return matrix.NewVector[float64](-1), nil
}

func TestStep_TwoByTwoConverges(t *testing.T) {
	a, b := twoByTwo(t)
	model, err := lsq.NewLinearModel(a, b, float32(lsq.DefaultJacobianScale))
	require.NoError(t, err)
	solver := lsq.NewSolver[float32]()

	x := matrix.NewVector[float32](10.4, 0.4)
	prev := float32(math.Inf(1))
	for i := 0; i < 5; i++ {
		next, res, err := solver.Step(model, x)
		require.NoError(t, err)
		require.True(t, res.Accepted, "step %d", i)
		assert.Equal(t, 1.0, res.Alpha, "full step is always accepted here")
		assert.Less(t, res.Error1, res.Error0)
		assert.Less(t, res.Error1, prev)
		prev = res.Error1
		x = next
	}
	assert.Less(t, prev, float32(0.01))
	assert.InDelta(t, 1.0, at(t, x, 0), 0.05)
	assert.InDelta(t, 1.0, at(t, x, 1), 0.05)
}

func TestStep_UnitScaleSolvesInOneStep(t *testing.T) {
	a, b := twoByTwo(t)
	model, err := lsq.NewLinearModel(a, b, 1)
	require.NoError(t, err)

	x1, res, err := lsq.NewSolver[float32]().Step(model, matrix.NewVector[float32](10.4, 0.4))
	require.NoError(t, err)
	require.True(t, res.Accepted)
	assert.True(t, matrix.AllClose(matrix.NewVector[float32](1, 1), x1, 1e-3), "got %v", x1)
	assert.Less(t, res.Error1, float32(1e-4))
}

func TestStep_SingularNormalMatrix(t *testing.T) {
	a := rows32(t, [][]float32{{1, 1}, {2, 2}})
	b := matrix.NewVector[float32](1, 2)
	x0 := matrix.NewVector[float32](0, 0)

	core, logs := observer.New(zapcore.DebugLevel)
	_, _, err := lsq.SolveStep(a, b, x0, 0, lsq.WithLogger(zap.New(core)))
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.Equal(t, 1, logs.FilterMessage("normal matrix is singular").Len())

	x1, res, err := lsq.SolveStep(a, b, x0, 0.1)
	require.NoError(t, err)
	require.True(t, res.Accepted)
	assert.Less(t, res.Error1, res.Error0)
	for i := 0; i < 2; i++ {
		v := float64(at(t, x1, i))
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

// unitWell has the finite residual f(x) = x only inside |x| < 1 and a slope
// estimate of 0.1, so the first full steps land where f is NaN.
type unitWell struct{}

func (unitWell) Dims() (int, int) { return 1, 1 }

func (unitWell) Residual(x *matrix.Dense[float64]) (*matrix.Dense[float64], error) {
	v, err := x.Vec(0)
	if err != nil {
		return nil, err
	}
	if math.Abs(v) >= 1 {
		return matrix.NewVector(math.NaN()), nil
	}

	return matrix.NewVector(v), nil
}

func (unitWell) Jacobian(*matrix.Dense[float64]) (*matrix.Dense[float64], error) {
	return matrix.NewVector[float64](0.1), nil
}

func TestStep_RejectsNonFiniteTrials(t *testing.T) {
	x1, res, err := lsq.NewSolver[float64]().Step(unitWell{}, matrix.NewVector[float64](0.5))
	require.NoError(t, err)
	require.True(t, res.Accepted)
	// α = 1 and ½ hit NaN, ¼ overshoots to -0.75, ⅛ lands at -0.125.
	assert.Equal(t, 4, res.Trials)
	assert.Equal(t, 0.125, res.Alpha)
	assert.InDelta(t, -0.125, at(t, x1, 0), 1e-12)
	assert.Less(t, res.Error1, res.Error0)
}

func TestStep_LineSearchExhausted(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	solver := lsq.NewSolver[float64](lsq.WithLogger(zap.New(core)))
	x0 := matrix.NewVector[float64](3)

	x1, res, err := solver.Step(wrongSlope{}, x0)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, 10, res.Trials, "α = 1 … 1/512")
	assert.Equal(t, res.Error0, res.Error1)
	assert.Zero(t, res.Alpha)
	assert.True(t, matrix.Equal(x0, x1))
	assert.NotSame(t, x0, x1)

	assert.Equal(t, 10, logs.FilterMessage("line search trial").Len())
	assert.Equal(t, 1, logs.FilterMessage("line search exhausted").Len())
}

func TestStep_CustomLineSearch(t *testing.T) {
	solver := lsq.NewSolver[float64](lsq.WithStepShrink(0.1), lsq.WithMinStep(0.05))
	_, res, err := solver.Step(wrongSlope{}, matrix.NewVector[float64](3))
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, 2, res.Trials, "α = 1, 0.1")
}

func TestStep_DescentGuarantee(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := func(r, c int) *matrix.Dense[float64] {
		m, err := matrix.FromFunc(r, c, func(int, int) float64 { return rng.Float64()*2 - 1 })
		require.NoError(t, err)
		return m
	}
	for trial := 0; trial < 50; trial++ {
		a, b, x0 := random(4, 5), random(4, 1), random(5, 1)
		x1, res, err := lsq.SolveStep(a, b, x0, 0.001)
		require.NoError(t, err, "trial %d", trial)
		if res.Accepted {
			assert.Less(t, res.Error1, res.Error0, "trial %d", trial)
			continue
		}
		assert.True(t, matrix.Equal(x0, x1), "trial %d", trial)
	}
}

func TestStep_Errors(t *testing.T) {
	a, b := twoByTwo(t)
	model, err := lsq.NewLinearModel(a, b, 1)
	require.NoError(t, err)
	solver := lsq.NewSolver[float32]()

	_, _, err = solver.Step(nil, matrix.NewVector[float32](0, 0))
	require.ErrorIs(t, err, lsq.ErrNilProblem)

	_, _, err = solver.Step(model, matrix.NewVector[float32](0, 0, 0))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = solver.Step(model, matrix.NewVector(float32(math.NaN()), 0))
	require.ErrorIs(t, err, lsq.ErrNonFinite)

	_, _, err = lsq.SolveStep(a, b, matrix.NewVector[float32](0, 0), -1)
	require.ErrorIs(t, err, lsq.ErrInvalidDamping)

	_, err = lsq.NewLinearModel(a, matrix.NewVector[float32](1, 2, 3), 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestStep_DoesNotMutateInput(t *testing.T) {
	a, b := twoByTwo(t)
	x0 := matrix.NewVector[float32](10.4, 0.4)
	before := x0.Clone()
	_, _, err := lsq.SolveStep(a, b, x0, 0)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(before, x0))
}

func TestIterate(t *testing.T) {
	a, b := twoByTwo(t)
	model, err := lsq.NewLinearModel(a, b, float32(lsq.DefaultJacobianScale))
	require.NoError(t, err)

	x, history, err := lsq.NewSolver[float32]().Iterate(model, matrix.NewVector[float32](10.4, 0.4), 5)
	require.NoError(t, err)
	require.Len(t, history, 5)
	for i := 1; i < len(history); i++ {
		assert.Less(t, history[i].Error1, history[i-1].Error1)
	}
	assert.InDelta(t, 1.0, at(t, x, 0), 0.05)

	stalled, uphill, err := lsq.NewSolver[float64]().Iterate(wrongSlope{}, matrix.NewVector[float64](3), 5)
	require.NoError(t, err)
	require.Len(t, uphill, 1, "stops after the first rejected step")
	assert.False(t, uphill[0].Accepted)
	assert.True(t, matrix.Equal(matrix.NewVector[float64](3), stalled))

	start, none, err := lsq.NewSolver[float64]().Iterate(wrongSlope{}, matrix.NewVector[float64](3), 0)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.True(t, matrix.Equal(matrix.NewVector[float64](3), start))
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { lsq.WithDamping(-1) })
	assert.Panics(t, func() { lsq.WithDamping(math.NaN()) })
	assert.Panics(t, func() { lsq.WithMinStep(0) })
	assert.Panics(t, func() { lsq.WithMinStep(2) })
	assert.Panics(t, func() { lsq.WithStepShrink(1) })
	assert.NotPanics(t, func() { lsq.NewSolver[float32](lsq.WithLogger(nil), nil) })
	assert.Equal(t, 0.25, lsq.NewSolver[float32](lsq.WithDamping(0.25)).Damping())
}
