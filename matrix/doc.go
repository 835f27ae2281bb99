// SPDX-License-Identifier: MIT

// Package matrix provides a small, fixed-shape linear-algebra kernel.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix of float32 or float64 values whose shape
//     is fixed at construction. Vectors are Dense values with one column.
//   - Element-wise Add/Sub/Neg/Hadamard, scalar Scale, Mul/MatVec, Transpose
//     and NormSquared. Every binary kernel validates shapes and returns
//     ErrDimensionMismatch instead of truncating or padding.
//   - RowView/ColumnView: non-owning, read-only views exposing lazy,
//     restartable iter.Seq sequences over a row or a column.
//   - LU (partial pivoting), Inverse and Solve; a zero or non-finite pivot
//     yields ErrSingular.
//
// All kernels allocate a fresh result and never mutate their operands, so a
// *Dense handed to an operation behaves like a value.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float32{{2, 1}, {3, 0}})
//	x := matrix.NewVector[float32](1, 1)
//	y, _ := matrix.MatVec(a, x) // [3 3]ᵀ
//
// See the examples in this package and lsq for the solver built on top.
package matrix
