// SPDX-License-Identifier: MIT

// Package flowinv approximates a generalized inverse of a sign-structured
// coefficient matrix by propagating "flow" through its entries.
//
// 🚀 What is it?
//
//	In a coefficient matrix A (M rows × N columns) positive entries are read
//	as direct contributions and negative entries as feedback (inputs that a
//	column consumes from another row). Invert seeds one unit of flow per row,
//	splits it evenly across that row's positive columns, and forwards every
//	column's share through the column's negative entries to the rows they
//	consume from, up to a fixed depth. The accumulated N×M result behaves like
//	a truncated Neumann series Σ(feedback)^k, k ≤ depth.
//
// ✨ Properties:
//   - never fails for a non-nil input; rows without positive entries contribute nothing
//   - strictly sequential depth-first accumulation: identical inputs give
//     bit-identical outputs
//   - depth 0 on a matrix without negative entries already equals any deeper result
//
// ⚠️ Scope:
//
//	This is a documented heuristic, used as a diagnostic cross-check against
//	the exact (AᵀA+βI)⁻¹Aᵀ operator. It is not derived for arbitrary
//	matrices and must not replace the exact inverse in a solver.
//
// ⚙️ Usage:
//
//	approx, err := flowinv.Invert(a, flowinv.DefaultDepth)
//	gap, err := flowinv.Gap(approx, exact)
package flowinv
