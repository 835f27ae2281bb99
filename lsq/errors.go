// SPDX-License-Identifier: MIT

package lsq

import (
	"errors"
	"fmt"
)

var (
	// ErrNilProblem is returned when a Step receives a nil Problem.
	ErrNilProblem = errors.New("lsq: nil problem")

	// ErrNonFinite is returned when the residual error at the starting point
	// is NaN or ±Inf. Non-finite errors of trial points are simply rejected
	// by the line search.
	ErrNonFinite = errors.New("lsq: non-finite residual error")

	// ErrInvalidDamping is returned by SolveStep for a negative or non-finite β.
	ErrInvalidDamping = errors.New("lsq: damping must be finite and >= 0")
)

// lsqErrorf wraps err with an operation tag, preserving it for errors.Is.
func lsqErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
