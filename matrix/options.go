// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and FromFunc.
	DefaultValidateNaNInf = true

	// DefaultPivotTolerance is the magnitude at or below which an LU pivot is
	// treated as zero. Zero means only an exact 0 (or NaN/Inf) pivot is singular.
	DefaultPivotTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	pivotTol       float64 // DefaultPivotTolerance
}

// WithValidateNaNInf enables strict finite-value validation.
// When enabled, Set and FromFunc reject NaN and ±Inf with ErrNaNInf.
// This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation on Set and FromFunc.
//
// Notes:
//   - Kernels never validate their own outputs; the policy only guards explicit writes.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithPivotTolerance sets the pivot magnitude treated as zero by LU/Inverse/Solve.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0 (panic otherwise).
//   - Stage 2: return a setter writing pivotTol.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// defaultOptions returns Options populated with documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		pivotTol:       DefaultPivotTolerance,
	}
}

// gatherOptions applies user options over defaults in order (last write wins).
// Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
