// SPDX-License-Identifier: MIT

// Package matrix - read-only row/column views.
//
// Purpose:
//   - Expose a single row or column of a Dense without copying it.
//   - Offer lazy, finite, restartable sequences (iter.Seq) in index order.
//
// Views hold a reference to their source; they never own or mutate storage.
// Mutating the source after creating a view is visible through the view.

package matrix

import (
	"fmt"
	"iter"
)

const (
	ctxRow    = "Row"    // ctor tag for Dense.Row
	ctxColumn = "Column" // ctor tag for Dense.Column
)

// RowView is a non-owning, read-only window over one row of a Dense.
type RowView[T Float] struct {
	src *Dense[T] // source matrix (back reference, not owned)
	row int       // row index in src
}

// ColumnView is a non-owning, read-only window over one column of a Dense.
type ColumnView[T Float] struct {
	src *Dense[T] // source matrix (back reference, not owned)
	col int       // column index in src
}

// Row returns a read-only view of row r.
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Row(r int) (RowView[T], error) {
	if m == nil {
		return RowView[T]{}, fmt.Errorf("Dense.%s: %w", ctxRow, ErrNilMatrix)
	}
	if r < 0 || r >= m.r {
		return RowView[T]{}, fmt.Errorf("Dense.%s(%d): %w", ctxRow, r, ErrOutOfRange)
	}

	return RowView[T]{src: m, row: r}, nil
}

// Column returns a read-only view of column c.
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Column(c int) (ColumnView[T], error) {
	if m == nil {
		return ColumnView[T]{}, fmt.Errorf("Dense.%s: %w", ctxColumn, ErrNilMatrix)
	}
	if c < 0 || c >= m.c {
		return ColumnView[T]{}, fmt.Errorf("Dense.%s(%d): %w", ctxColumn, c, ErrOutOfRange)
	}

	return ColumnView[T]{src: m, col: c}, nil
}

// Len returns the number of elements in the row (the source column count).
func (v RowView[T]) Len() int { return v.src.c }

// Index returns the row index this view reads.
func (v RowView[T]) Index() int { return v.row }

// At returns element j of the row or ErrOutOfRange.
func (v RowView[T]) At(j int) (T, error) { return v.src.At(v.row, j) }

// All yields the row's elements in column order. Each call restarts the sequence.
func (v RowView[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		base := v.row * v.src.c
		for j := 0; j < v.src.c; j++ {
			if !yield(v.src.data[base+j]) {
				return
			}
		}
	}
}

// Indexed yields (column, value) pairs in column order.
func (v RowView[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		base := v.row * v.src.c
		for j := 0; j < v.src.c; j++ {
			if !yield(j, v.src.data[base+j]) {
				return
			}
		}
	}
}

// Len returns the number of elements in the column (the source row count).
func (v ColumnView[T]) Len() int { return v.src.r }

// Index returns the column index this view reads.
func (v ColumnView[T]) Index() int { return v.col }

// At returns element i of the column or ErrOutOfRange.
func (v ColumnView[T]) At(i int) (T, error) { return v.src.At(i, v.col) }

// All yields the column's elements in row order. Each call restarts the sequence.
func (v ColumnView[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.src.r; i++ {
			if !yield(v.src.data[i*v.src.c+v.col]) {
				return
			}
		}
	}
}

// Indexed yields (row, value) pairs in row order.
func (v ColumnView[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.src.r; i++ {
			if !yield(i, v.src.data[i*v.src.c+v.col]) {
				return
			}
		}
	}
}
