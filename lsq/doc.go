// SPDX-License-Identifier: MIT

// Package lsq implements one damped Gauss–Newton step with backtracking line
// search for nonlinear least-squares problems min ‖f(x)‖².
//
// 🚀 What is it?
//
//	Given a residual f: ℝᴺ → ℝᴹ and its Jacobian J, a Step linearizes at x₀,
//	solves the damped normal equations (JᵀJ + βI)·d = −Jᵀf(x₀) with the exact
//	LU inverter from package matrix, and walks along d with α = 1, ½, ¼, …
//	until the squared residual strictly drops. β = 0 is plain Gauss–Newton;
//	β > 0 gives a Levenberg–Marquardt flavored step with constant damping.
//
// ✨ Outcomes of a Step:
//   - accepted: x₁ = x₀ + α·d with ‖f(x₁)‖² < ‖f(x₀)‖²
//   - exhausted: α fell below the floor; x₁ is an unchanged copy of x₀ and
//     StepResult.Accepted is false (not an error)
//   - failed: the normal matrix is singular (matrix.ErrSingular), shapes
//     disagree (matrix.ErrDimensionMismatch) or the starting error is not
//     finite (ErrNonFinite)
//
// A Step never iterates to a tolerance. Callers that want several steps use
// Iterate or loop themselves.
//
// ⚙️ Usage:
//
//	model, _ := lsq.NewLinearModel(a, b, float32(lsq.DefaultJacobianScale))
//	solver := lsq.NewSolver[float32](lsq.WithDamping(0.001))
//	x1, res, err := solver.Step(model, x0)
package lsq
