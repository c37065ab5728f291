// SPDX-License-Identifier: MIT
// Package: polyroots/analytic
//
// linear.go - degree-1 solver, the leaf of the reduction DAG.

package analytic

import "github.com/katalvlaran/polyroots/poly"

// SolveLinear returns the real root of a1·x + a0 = 0.
//
// Contract:
//   - a1 != 0 → exactly one root, -a0/a1.
//   - a1 == 0 → empty result, whatever a0 is: either the equation is a
//     non-zero constant (no roots) or identically zero (every x solves
//     it, and no finite encoding of "all reals" exists here). Neither
//     case is an error.
//
// Complexity: O(1), one allocation at most.
func SolveLinear[F poly.Float](a1, a0 F) []F {
	if a1 == 0 {
		return nil
	}

	return []F{-a0 / a1}
}
