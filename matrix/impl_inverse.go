// SPDX-License-Identifier: MIT

// Package matrix - exact inversion via LU with partial pivoting.
//
// Purpose:
//   - Factorize P·A = L·U (L unit lower, U upper) once and reuse it for
//     Inverse, Solve and Det.
//   - Report singularity as ErrSingular instead of producing Inf/NaN.
//
// Determinism:
//   - Pivot choice is the first row holding the largest |a[i,k]| (strict >),
//     so identical inputs always produce identical factors.

package matrix

import (
	"fmt"
	"math"
)

// LUFactors holds a packed LU factorization of a square matrix.
// lu stores L strictly below the diagonal (unit diagonal implied) and U on
// and above it; perm[i] is the source row placed at position i.
type LUFactors[T Float] struct {
	n    int
	lu   *Dense[T]
	perm []int
	sign int // +1 / −1: parity of the row permutation
}

// LU computes the factorization P·A = L·U with partial pivoting.
// MAIN DESCRIPTION:
//   - Doolittle elimination on a private copy of m; m is never mutated.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); clone into the packed workspace.
//   - Stage 2: for each column k pick the largest pivot at or below k, swap,
//     reject |pivot| ≤ tol (or non-finite) with ErrSingular, eliminate below.
//
// Inputs:
//   - m: square matrix (n×n).
//   - opts: WithPivotTolerance (default: only an exact zero pivot is singular).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (wrapped with the column).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU[T Float](m *Dense[T], opts ...Option) (*LUFactors[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	n := m.r
	a := m.Clone()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1

	var (
		i, j, k, p int
		best, mag  float64
		pivot, f   T
		baseK      int
		baseI      int
	)
	for k = 0; k < n; k++ {
		// Stage 2.1: choose pivot row p (first maximum wins).
		p = k
		best = math.Abs(float64(a.data[k*n+k]))
		for i = k + 1; i < n; i++ {
			mag = math.Abs(float64(a.data[i*n+k]))
			if mag > best {
				best, p = mag, i
			}
		}
		pivot = a.data[p*n+k]
		if isNonFinite(pivot) || best <= o.pivotTol {
			return nil, matrixErrorf(opLU, fmt.Errorf("zero pivot in column %d: %w", k, ErrSingular))
		}

		// Stage 2.2: swap rows k and p.
		if p != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[p*n+j] = a.data[p*n+j], a.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		// Stage 2.3: eliminate below the pivot.
		baseK = k * n
		for i = k + 1; i < n; i++ {
			baseI = i * n
			f = a.data[baseI+k] / pivot
			a.data[baseI+k] = f
			for j = k + 1; j < n; j++ {
				a.data[baseI+j] -= f * a.data[baseK+j]
			}
		}
	}

	return &LUFactors[T]{n: n, lu: a, perm: perm, sign: sign}, nil
}

// L returns the unit lower-triangular factor as a new matrix.
func (f *LUFactors[T]) L() *Dense[T] {
	l := newDense[T](f.n, f.n, f.lu.validateNaNInf)
	for i := 0; i < f.n; i++ {
		for j := 0; j < i; j++ {
			l.data[i*f.n+j] = f.lu.data[i*f.n+j]
		}
		l.data[i*f.n+i] = 1
	}

	return l
}

// U returns the upper-triangular factor as a new matrix.
func (f *LUFactors[T]) U() *Dense[T] {
	u := newDense[T](f.n, f.n, f.lu.validateNaNInf)
	for i := 0; i < f.n; i++ {
		for j := i; j < f.n; j++ {
			u.data[i*f.n+j] = f.lu.data[i*f.n+j]
		}
	}

	return u
}

// Pivots returns a copy of the row permutation: position i holds source row Pivots()[i].
func (f *LUFactors[T]) Pivots() []int {
	cp := make([]int, len(f.perm))
	copy(cp, f.perm)

	return cp
}

// Det returns det(A) = sign(P) · Π U[i,i].
func (f *LUFactors[T]) Det() T {
	det := T(f.sign)
	for i := 0; i < f.n; i++ {
		det *= f.lu.data[i*f.n+i]
	}

	return det
}

// solveInto solves A·x = rhs for one right-hand side using the packed factors.
// rhs is indexed by source row; x receives the solution.
func (f *LUFactors[T]) solveInto(rhs func(i int) T, x []T) {
	n := f.n
	var i, k, base int
	var sum T
	// Forward substitution: L·y = P·b (y stored in x).
	for i = 0; i < n; i++ {
		base = i * n
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += f.lu.data[base+k] * x[k]
		}
		x[i] = rhs(f.perm[i]) - sum
	}
	// Backward substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		base = i * n
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += f.lu.data[base+k] * x[k]
		}
		x[i] = (x[i] - sum) / f.lu.data[base+i]
	}
}

// SolveVec solves A·x = b for a column vector b of length n.
//
// Errors:
//   - ErrNilMatrix, ErrNotVector, ErrDimensionMismatch.
func (f *LUFactors[T]) SolveVec(b *Dense[T]) (*Dense[T], error) {
	if err := ValidateVector(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := newDense[T](f.n, 1, b.validateNaNInf)
	f.solveInto(func(i int) T { return b.data[i] }, x.data)

	return x, nil
}

// Inverse assembles A⁻¹ column by column from the factors.
func (f *LUFactors[T]) Inverse() *Dense[T] {
	n := f.n
	inv := newDense[T](n, n, f.lu.validateNaNInf)
	x := make([]T, n)
	var col, i int
	for col = 0; col < n; col++ {
		f.solveInto(func(i int) T {
			if i == col {
				return 1
			}
			return 0
		}, x)
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv
}

// Inverse computes A⁻¹ via LU with partial pivoting.
// The input must be non-nil and square. Returns ErrSingular if no usable pivot
// remains. Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: LU(m) → packed L\U and permutation.
//   - Stage 2: for each canonical basis column e_col: forward solve L·y = P·e_col,
//     backward solve U·x = y, write x into column col.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - If you only need A⁻¹·b, prefer Solve (cheaper than forming A⁻¹).
func Inverse[T Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return f.Inverse(), nil
}

// Solve solves A·x = b for a square A and a column vector b.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, ErrNotVector, ErrDimensionMismatch.
func Solve[T Float](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	f, err := LU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.SolveVec(b)
}
