// SPDX-License-Identifier: MIT

package lsq

import (
	"math"

	"github.com/katalvlaran/lvlopt/matrix"
)

// DefaultJacobianScale is the constant k in J = k·A used by the linear model
// when the caller has no better estimate.
const DefaultJacobianScale = math.Sqrt2

const (
	opNewLinearModel = "NewLinearModel"
	opResidual       = "Residual"
)

// Problem describes a least-squares objective ‖f(x)‖² over N parameters and
// M residuals. Residual returns an M×1 vector and Jacobian an M×N matrix;
// both receive an N×1 vector and must not retain or mutate it.
type Problem[T matrix.Float] interface {
	Dims() (m, n int)
	Residual(x *matrix.Dense[T]) (*matrix.Dense[T], error)
	Jacobian(x *matrix.Dense[T]) (*matrix.Dense[T], error)
}

// LinearModel is the affine residual f(x) = A·x − b with the constant
// Jacobian J = k·A.
type LinearModel[T matrix.Float] struct {
	a *matrix.Dense[T] // M×N coefficients
	b *matrix.Dense[T] // M×1 target
	j *matrix.Dense[T] // k·A, precomputed
}

var _ Problem[float32] = (*LinearModel[float32])(nil)

// NewLinearModel validates shapes and precomputes J = k·A.
// a and b are copied.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNotVector, matrix.ErrDimensionMismatch.
func NewLinearModel[T matrix.Float](a, b *matrix.Dense[T], k T) (*LinearModel[T], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, lsqErrorf(opNewLinearModel, err)
	}
	if err := matrix.ValidateVector(b, a.Rows()); err != nil {
		return nil, lsqErrorf(opNewLinearModel, err)
	}
	j, err := matrix.Scale(a, k)
	if err != nil {
		return nil, lsqErrorf(opNewLinearModel, err)
	}

	return &LinearModel[T]{a: a.Clone(), b: b.Clone(), j: j}, nil
}

// Dims returns (M, N) of the coefficient matrix.
func (lm *LinearModel[T]) Dims() (m, n int) { return lm.a.Shape() }

// Residual returns A·x − b.
func (lm *LinearModel[T]) Residual(x *matrix.Dense[T]) (*matrix.Dense[T], error) {
	ax, err := matrix.MatVec(lm.a, x)
	if err != nil {
		return nil, lsqErrorf(opResidual, err)
	}

	return matrix.Sub(ax, lm.b)
}

// Jacobian returns a copy of k·A; x is ignored.
func (lm *LinearModel[T]) Jacobian(*matrix.Dense[T]) (*matrix.Dense[T], error) {
	return lm.j.Clone(), nil
}
