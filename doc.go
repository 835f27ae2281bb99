// SPDX-License-Identifier: MIT

// Package lvlopt is a small numerical optimization toolkit: fixed-shape
// generic matrices, an exact LU inverter, a flow-based approximate inverse
// and a damped Gauss–Newton step with backtracking line search, driven by a
// toy labor allocation economy.
//
// 🚀 What is lvlopt?
//
//	A compact, deterministic library for small dense least-squares problems:
//		• matrix/:  Dense[T] (float32/float64), views, kernels, LU, Inverse, Solve
//		• flowinv/: approximate generalized inverse by depth-limited flow spreading
//		• lsq/:     Problem interface, LinearModel, damped Gauss–Newton Step, Iterate
//		• economy/: goods, labors and recipes; one Tick redistributes laborers
//		• report/:  console report per tick and a labor allocation chart
//		• config/, logger/: JSON configuration and zap loggers for the commands
//
// ✨ Guarantees
//
//   - Shapes are fixed at construction; every mismatch is an error, never a panic
//   - Sentinel errors matched with errors.Is
//   - Fixed loop orders: identical inputs give bit-identical outputs
//
// Commands:
//
//	go run ./cmd/newtongauss            # the 2×2 Gauss–Newton walk-through
//	go run ./cmd/economy -ticks 100     # the labor allocation economy
package lvlopt
