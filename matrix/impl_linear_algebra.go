// SPDX-License-Identifier: MIT
// Package matrix provides the fixed-shape linear-algebra kernels:
// element-wise addition, subtraction, negation and products, scalar scaling,
// matrix multiplication, transpose and the squared norm. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical kernels used by the solver and the approximate inverse.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opNeg       = "Neg"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opZipMap    = "ZipMap"
	opNorm      = "NormSquared"
	opShift     = "AddScaledIdentity"
	opInverse   = "Inverse"
	opLU        = "LU"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zipWith computes out[i] = f(a[i], b[i]) over identically shaped operands.
// Internal helper for Add/Sub/Hadamard/ZipMap to share validation and allocation.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: single flat loop 0..n-1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func zipWith[T Float](a, b *Dense[T], opTag string, f func(x, y T) T) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newDense[T](a.r, a.c, a.validateNaNInf)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = f(a.data[idx], b.data[idx])
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Float](a, b *Dense[T]) (*Dense[T], error) {
	return zipWith(a, b, opAdd, func(x, y T) T { return x + y })
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Float](a, b *Dense[T]) (*Dense[T], error) {
	return zipWith(a, b, opSub, func(x, y T) T { return x - y })
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
func Hadamard[T Float](a, b *Dense[T]) (*Dense[T], error) {
	return zipWith(a, b, opHadamard, func(x, y T) T { return x * y })
}

// ZipMap combines two identically shaped matrices element by element with f.
func ZipMap[T Float](a, b *Dense[T], f func(x, y T) T) (*Dense[T], error) {
	return zipWith(a, b, opZipMap, f)
}

// Neg returns −m.
func Neg[T Float](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	res := newDense[T](m.r, m.c, m.validateNaNInf)
	for idx, v := range m.data {
		res.data[idx] = -v
	}

	return res, nil
}

// Scale returns a new matrix whose elements are k * m[i,j].
// Scalar multiplication is commutative: Scale(m, k) is both k·m and m·k.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Float](m *Dense[T], k T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newDense[T](m.r, m.c, m.validateNaNInf)
	for idx, v := range m.data {
		res.data[idx] = k * v
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, accumulating into C.
//
// Behavior highlights:
//   - Deterministic triple loop; one allocation for C; every term is
//     accumulated (no zero skipping) so summation order never depends on data.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Float](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := newDense[T](aRows, bCols, a.validateNaNInf)
	var (
		i, j, k                            int
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = A·x for a column vector x (len(x) == A.Cols).
//
// Errors:
//   - ErrNilMatrix, ErrNotVector (x has more than one column),
//     ErrDimensionMismatch (length conflict).
func MatVec[T Float](a, x *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVector(x, a.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	res := newDense[T](a.r, 1, a.validateNaNInf)
	var i, k, base int
	var sum T
	for i = 0; i < a.r; i++ {
		base = i * a.c
		sum = ZeroSum
		for k = 0; k < a.c; k++ {
			sum += a.data[base+k] * x.data[k]
		}
		res.data[i] = sum
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// transpose(transpose(m)) equals m element for element.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose[T Float](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res := newDense[T](cols, rows, m.validateNaNInf)
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// NormSquared returns the sum of squared elements, accumulated in row-major order.
// It is ≥ 0 for finite input and == 0 iff every element is zero.
// A nil matrix yields 0.
func NormSquared[T Float](m *Dense[T]) T {
	if m == nil {
		return ZeroSum
	}
	var sum T
	for _, v := range m.data {
		sum += v * v
	}

	return sum
}

// NormSquared is the method form of the package-level NormSquared.
func (m *Dense[T]) NormSquared() T { return NormSquared(m) }

// AddScaledIdentity returns m + beta·I for a square m (Tikhonov shift).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func AddScaledIdentity[T Float](m *Dense[T], beta T) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opShift, err)
	}
	res := m.Clone()
	for i := 0; i < m.r; i++ {
		res.data[i*m.c+i] += beta
	}

	return res, nil
}

// Equal reports exact element-wise equality of two same-shaped matrices.
// Nil equals only nil; shapes that differ are never equal.
func Equal[T Float](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ tol for every element.
// Shapes that differ are never close. tol must be ≥ 0.
func AllClose[T Float](a, b *Dense[T], tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if math.Abs(float64(a.data[idx])-float64(b.data[idx])) > tol {
			return false
		}
	}

	return true
}
