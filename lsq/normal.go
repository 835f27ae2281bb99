// SPDX-License-Identifier: MIT

package lsq

import "github.com/katalvlaran/lvlopt/matrix"

const (
	opNormalMatrix  = "NormalMatrix"
	opPseudoInverse = "PseudoInverse"
)

// NormalMatrix returns the damped normal matrix JᵀJ + βI (N×N).
func NormalMatrix[T matrix.Float](j *matrix.Dense[T], beta T) (*matrix.Dense[T], error) {
	jt, err := matrix.Transpose(j)
	if err != nil {
		return nil, lsqErrorf(opNormalMatrix, err)
	}
	d, err := normal(j, jt, beta)
	if err != nil {
		return nil, lsqErrorf(opNormalMatrix, err)
	}

	return d, nil
}

// PseudoInverse returns the regularized solution operator (AᵀA + βI)⁻¹·Aᵀ,
// an N×M matrix. For β = 0 and full column rank it is the Moore–Penrose
// pseudo-inverse; for square invertible A it equals A⁻¹.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrSingular.
func PseudoInverse[T matrix.Float](a *matrix.Dense[T], beta T) (*matrix.Dense[T], error) {
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, lsqErrorf(opPseudoInverse, err)
	}
	dinv, err := normalInverse(a, at, beta)
	if err != nil {
		return nil, lsqErrorf(opPseudoInverse, err)
	}
	p, err := matrix.Mul(dinv, at)
	if err != nil {
		return nil, lsqErrorf(opPseudoInverse, err)
	}

	return p, nil
}

func normal[T matrix.Float](j, jt *matrix.Dense[T], beta T) (*matrix.Dense[T], error) {
	jtj, err := matrix.Mul(jt, j)
	if err != nil {
		return nil, err
	}

	return matrix.AddScaledIdentity(jtj, beta)
}

func normalInverse[T matrix.Float](j, jt *matrix.Dense[T], beta T) (*matrix.Dense[T], error) {
	d, err := normal(j, jt, beta)
	if err != nil {
		return nil, err
	}

	return matrix.Inverse(d)
}
