// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// with fmt.Errorf("<Op>: %w", ErrX) via matrixErrorf; callers match with errors.Is.
//
// ERROR PRIORITY:
// nil -> shape/index -> dimension mismatch -> numeric (NaN/Inf, singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Column) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It wraps ErrDimensionMismatch, so errors.Is matches both.
	ErrNonSquare = fmtWrap("matrix: matrix is not square", ErrDimensionMismatch)

	// ErrNotVector signals that a single-column matrix was required.
	// It wraps ErrDimensionMismatch, so errors.Is matches both.
	ErrNotVector = fmtWrap("matrix: matrix is not a column vector", ErrDimensionMismatch)

	// ErrRaggedRows signals that FromRows received rows of different lengths.
	ErrRaggedRows = fmtWrap("matrix: ragged rows", ErrDimensionMismatch)

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when no usable pivot remains during LU/Inverse.
	ErrSingular = errors.New("matrix: singular matrix")
)

// wrappedSentinel is a sentinel that also matches a broader parent sentinel.
type wrappedSentinel struct {
	msg    string
	parent error
}

func (e *wrappedSentinel) Error() string { return e.msg }
func (e *wrappedSentinel) Unwrap() error { return e.parent }

func fmtWrap(msg string, parent error) error {
	return &wrappedSentinel{msg: msg, parent: parent}
}
