// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T Float](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil. Returns ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape[T Float](a, b *Dense[T]) error {
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameShape – NotNil(a), NotNil(b), then SameShape(a,b).
func ValidateBinarySameShape[T Float](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible – NotNil(a), NotNil(b), then a.Cols == b.Rows.
// Returns ErrDimensionMismatch on an inner-dimension conflict. Complexity: O(1).
func ValidateMulCompatible[T Float](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare – NotNil(m), then Rows == Cols. Returns ErrNonSquare.
func ValidateSquare[T Float](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateVector – NotNil(v), then Cols == 1 and, when n > 0, Rows == n.
// Returns ErrNotVector or ErrDimensionMismatch.
func ValidateVector[T Float](v *Dense[T], n int) error {
	if err := ValidateNotNil(v); err != nil {
		return err
	}
	if v.c != 1 {
		return validatorErrorf("ValidateVector", fmt.Errorf("%dx%d: %w", v.r, v.c, ErrNotVector))
	}
	if n > 0 && v.r != n {
		return validatorErrorf("ValidateVector", fmt.Errorf("len %d, want %d: %w", v.r, n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateFinite – NotNil(m), then every element is finite. Returns ErrNaNInf
// wrapped with the first offending coordinates (row-major scan). Complexity: O(r*c).
func ValidateFinite[T Float](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for off, v := range m.data {
		if isNonFinite(v) {
			return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, off/m.c, off%m.c, ErrNaNInf))
		}
	}

	return nil
}
