// SPDX-License-Identifier: MIT

package lsq

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlopt/matrix"
)

const (
	opStep      = "Step"
	opSolveStep = "SolveStep"
	opIterate   = "Iterate"
)

// StepResult reports what one Step did.
type StepResult[T matrix.Float] struct {
	Error0   T       // ‖f(x₀)‖²
	Error1   T       // ‖f(x₁)‖²; equals Error0 when the step was not accepted
	Alpha    float64 // accepted step scale; 0 when not accepted
	Trials   int     // residual evaluations spent in the line search
	Accepted bool    // false means the line search was exhausted and x₁ == x₀
}

// Solver performs damped Gauss–Newton steps. It holds only configuration
// and is safe for concurrent use.
type Solver[T matrix.Float] struct {
	opts Options
}

// NewSolver builds a Solver from defaults overridden by opts.
func NewSolver[T matrix.Float](opts ...Option) *Solver[T] {
	return &Solver[T]{opts: gatherOptions(opts...)}
}

// Damping returns the configured β.
func (s *Solver[T]) Damping() float64 { return s.opts.damping }

// Step performs a single damped Gauss–Newton step from x0.
//
// Implementation:
//   - Stage 1: f₀ = f(x₀), error₀ = ‖f₀‖²; a non-finite error₀ fails with ErrNonFinite.
//   - Stage 2: J = J(x₀), D = JᵀJ + βI, D⁻¹ via LU (singular D fails the call).
//   - Stage 3: d = −D⁻¹·Jᵀ·f₀.
//   - Stage 4: backtrack α = 1, shrink, … and accept the first x₀ + α·d whose
//     error is strictly below error₀. Below the floor, return a copy of x₀.
//
// x0 is never mutated; the returned vector is always a fresh allocation.
//
// Errors:
//   - ErrNilProblem, ErrNonFinite, matrix.ErrDimensionMismatch,
//     matrix.ErrSingular, or any error returned by the Problem.
func (s *Solver[T]) Step(p Problem[T], x0 *matrix.Dense[T]) (*matrix.Dense[T], StepResult[T], error) {
	var res StepResult[T]
	if p == nil {
		return nil, res, lsqErrorf(opStep, ErrNilProblem)
	}
	m, n := p.Dims()
	if err := matrix.ValidateVector(x0, n); err != nil {
		return nil, res, lsqErrorf(opStep, err)
	}

	f0, err := s.residual(p, x0, m)
	if err != nil {
		return nil, res, lsqErrorf(opStep, err)
	}
	error0 := f0.NormSquared()
	res.Error0, res.Error1 = error0, error0
	if isNonFinite(error0) {
		return nil, res, lsqErrorf(opStep, ErrNonFinite)
	}

	dir, err := s.direction(p, x0, f0, m, n)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			s.opts.logger.Warn("normal matrix is singular",
				zap.Float64("beta", s.opts.damping),
				zap.Float64("error0", float64(error0)))
		}
		return nil, res, lsqErrorf(opStep, err)
	}

	alpha := 1.0
	for {
		res.Trials++
		a := T(alpha)
		x1, err := matrix.ZipMap(x0, dir, func(x, d T) T { return x + a*d })
		if err != nil {
			return nil, res, lsqErrorf(opStep, err)
		}
		f1, err := s.residual(p, x1, m)
		if err != nil {
			return nil, res, lsqErrorf(opStep, err)
		}
		error1 := f1.NormSquared()
		s.opts.logger.Debug("line search trial",
			zap.Int("trial", res.Trials),
			zap.Float64("alpha", alpha),
			zap.Float64("error0", float64(error0)),
			zap.Float64("error1", float64(error1)))
		if error1 < error0 {
			res.Error1, res.Alpha, res.Accepted = error1, alpha, true

			return x1, res, nil
		}

		alpha *= s.opts.shrink
		if alpha < s.opts.minStep {
			s.opts.logger.Debug("line search exhausted",
				zap.Int("trials", res.Trials),
				zap.Float64("error0", float64(error0)))

			return x0.Clone(), res, nil
		}
	}
}

// residual evaluates p at x and checks the result is an M×1 vector.
func (s *Solver[T]) residual(p Problem[T], x *matrix.Dense[T], m int) (*matrix.Dense[T], error) {
	f, err := p.Residual(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opResidual, err)
	}
	if err = matrix.ValidateVector(f, m); err != nil {
		return nil, fmt.Errorf("%s: %w", opResidual, err)
	}

	return f, nil
}

// direction computes d = −(JᵀJ + βI)⁻¹·Jᵀ·f₀.
func (s *Solver[T]) direction(p Problem[T], x0, f0 *matrix.Dense[T], m, n int) (*matrix.Dense[T], error) {
	j, err := p.Jacobian(x0)
	if err != nil {
		return nil, fmt.Errorf("Jacobian: %w", err)
	}
	if err = matrix.ValidateNotNil(j); err != nil {
		return nil, fmt.Errorf("Jacobian: %w", err)
	}
	if r, c := j.Shape(); r != m || c != n {
		return nil, fmt.Errorf("Jacobian: %dx%d, want %dx%d: %w", r, c, m, n, matrix.ErrDimensionMismatch)
	}

	jt, err := matrix.Transpose(j)
	if err != nil {
		return nil, err
	}
	dinv, err := normalInverse(j, jt, T(s.opts.damping))
	if err != nil {
		return nil, err
	}
	g, err := matrix.MatVec(jt, f0)
	if err != nil {
		return nil, err
	}
	step, err := matrix.MatVec(dinv, g)
	if err != nil {
		return nil, err
	}

	return matrix.Neg(step)
}

// SolveStep runs one Step on the linear model f(x) = A·x − b with
// J = DefaultJacobianScale·A and damping beta.
//
// Errors:
//   - ErrInvalidDamping, plus everything NewLinearModel and Step return.
func SolveStep[T matrix.Float](a, b, x0 *matrix.Dense[T], beta float64, opts ...Option) (*matrix.Dense[T], StepResult[T], error) {
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta < 0 {
		return nil, StepResult[T]{}, lsqErrorf(opSolveStep, ErrInvalidDamping)
	}
	model, err := NewLinearModel(a, b, T(DefaultJacobianScale))
	if err != nil {
		return nil, StepResult[T]{}, lsqErrorf(opSolveStep, err)
	}
	opts = append(opts, WithDamping(beta))

	return NewSolver[T](opts...).Step(model, x0)
}

// Iterate runs up to steps consecutive Steps starting at x0 and returns the
// last iterate together with one StepResult per executed step. It stops
// early after a step that was not accepted, since every further step would
// start from the same point. steps < 1 returns a copy of x0 and no history.
func (s *Solver[T]) Iterate(p Problem[T], x0 *matrix.Dense[T], steps int) (*matrix.Dense[T], []StepResult[T], error) {
	if err := matrix.ValidateNotNil(x0); err != nil {
		return nil, nil, lsqErrorf(opIterate, err)
	}
	x := x0.Clone()
	history := make([]StepResult[T], 0, max(steps, 0))
	for i := 0; i < steps; i++ {
		next, res, err := s.Step(p, x)
		if err != nil {
			return nil, history, lsqErrorf(opIterate, fmt.Errorf("step %d: %w", i, err))
		}
		history = append(history, res)
		x = next
		if !res.Accepted {
			break
		}
	}

	return x, history, nil
}

func isNonFinite[T matrix.Float](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}
