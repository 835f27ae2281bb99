// SPDX-License-Identifier: MIT

// Package lsq: functional options for Solver.
//
// Defaults reproduce the classic step: no damping, halving from α = 1 and
// giving up below α = 1e-3. WithX constructors panic on nonsensical values
// (programmer error); runtime inputs never panic.
package lsq

import (
	"math"

	"go.uber.org/zap"
)

const (
	// DefaultDamping is β in D = JᵀJ + βI. Zero gives plain Gauss–Newton.
	DefaultDamping = 0.0

	// DefaultMinStep is the step-scale floor: once α drops below it the line
	// search gives up and the step returns x₀ unchanged.
	DefaultMinStep = 1e-3

	// DefaultStepShrink multiplies α after every rejected trial.
	DefaultStepShrink = 0.5
)

const (
	panicDampingInvalid = "lsq: WithDamping: beta must be finite and >= 0"
	panicMinStepInvalid = "lsq: WithMinStep: floor must be in (0, 1]"
	panicShrinkInvalid  = "lsq: WithStepShrink: factor must be in (0, 1)"
)

// Option configures a Solver.
type Option func(*Options)

// Options is the effective Solver configuration.
type Options struct {
	damping float64
	minStep float64
	shrink  float64
	logger  *zap.Logger
}

// WithDamping sets β ≥ 0. The value is constant across steps.
func WithDamping(beta float64) Option {
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta < 0 {
		panic(panicDampingInvalid)
	}

	return func(o *Options) { o.damping = beta }
}

// WithMinStep sets the step-scale floor below which the line search stops.
func WithMinStep(floor float64) Option {
	if math.IsNaN(floor) || floor <= 0 || floor > 1 {
		panic(panicMinStepInvalid)
	}

	return func(o *Options) { o.minStep = floor }
}

// WithStepShrink sets the factor applied to α after a rejected trial.
func WithStepShrink(factor float64) Option {
	if math.IsNaN(factor) || factor <= 0 || factor >= 1 {
		panic(panicShrinkInvalid)
	}

	return func(o *Options) { o.shrink = factor }
}

// WithLogger routes step diagnostics to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

func defaultOptions() Options {
	return Options{
		damping: DefaultDamping,
		minStep: DefaultMinStep,
		shrink:  DefaultStepShrink,
		logger:  zap.NewNop(),
	}
}

func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
