// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Fix the shape at construction: no method ever resizes a Dense.
//
// Complexity quicksheet:
//   - NewDense/Zeros: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); FromFunc: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromFunc = "FromFunc" // ctor tag for FromFunc
	ctxFromRows = "FromRows" // ctor tag for FromRows
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// isNonFinite reports NaN or ±Inf for any Float element.
func isNonFinite[T Float](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Dense is a concrete row-major matrix with a shape fixed at construction.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
//
// A vector is a Dense with exactly one column.
type Dense[T Float] struct {
	r, c           int  // row and column counts (> 0)
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float32])(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and apply options.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: numeric policy options (see options.go).
//
// Returns:
//   - *Dense[T]: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Float](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDense is the internal allocator for kernels whose shapes are already validated.
// validate carries the numeric policy of the operand the result derives from.
func newDense[T Float](rows, cols int, validate bool) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), validateNaNInf: validate}
}

// Zeros returns an r×c matrix of additive-identity elements.
// It is NewDense under the name used by the solver and its callers.
func Zeros[T Float](rows, cols int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](rows, cols, opts...)
}

// NewVector builds an R×1 column vector from vals (R = len(vals) > 0).
// Panics on an empty argument list, which is a programmer error at the call site.
func NewVector[T Float](vals ...T) *Dense[T] {
	if len(vals) == 0 {
		panic("matrix: NewVector: empty vector")
	}
	data := make([]T, len(vals))
	copy(data, vals)

	return &Dense[T]{r: len(vals), c: 1, data: data, validateNaNInf: DefaultValidateNaNInf}
}

// FromFunc builds an r×c matrix where entry (i,j) = f(i,j).
// Implementation:
//   - Stage 1: allocate via NewDense (shape validation).
//   - Stage 2: evaluate f exactly r*c times in row-major order.
//   - Stage 3: enforce the numeric policy on every produced value.
//
// Errors:
//   - ErrInvalidDimensions, ErrNaNInf (policy on; wrapped with coordinates).
//
// Complexity:
//   - Time O(r*c) plus the cost of f, Space O(r*c).
func FromFunc[T Float](rows, cols int, f func(i, j int) T, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	var i, j, base int
	var v T
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			v = f(i, j)
			if m.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxFromFunc, i, j, ErrNaNInf)
			}
			m.data[base+j] = v
		}
	}

	return m, nil
}

// FromRows builds a matrix from row slices (copied; rows must share one length).
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row), ErrRaggedRows, ErrNaNInf.
func FromRows[T Float](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(rows[i]), cols, ErrRaggedRows)
		}
	}

	return FromFunc(len(rows), cols, func(i, j int) T { return rows[i][j] }, opts...)
}

// Identity returns the n×n identity matrix.
func Identity[T Float](n int, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of stored elements (r*c).
func (m *Dense[T]) Len() int { return len(m.data) }

// IsVector reports whether m has exactly one column.
func (m *Dense[T]) IsVector() bool { return m != nil && m.c == 1 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Vec returns element i of a column vector (row i, column 0).
// Errors:
//   - ErrNotVector when m has more than one column, ErrOutOfRange on a bad index.
func (m *Dense[T]) Vec(i int) (T, error) {
	if m.c != 1 {
		return 0, denseErrorf(ctxAt, i, 0, ErrNotVector)
	}

	return m.At(i, 0)
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// RawRowMajor returns a copy of the row-major buffer.
// The copy keeps Dense values independent of callers.
func (m *Dense[T]) RawRowMajor() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}
