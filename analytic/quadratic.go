// SPDX-License-Identifier: MIT
// Package: polyroots/analytic
//
// quadratic.go - degree-2 solver via the discriminant.
//
// Contract:
//   - a2 == 0 delegates to SolveLinear.
//   - D = a1² − 4·a2·a0 classifies: D<0 → no real roots, D==0 → one,
//     D>0 → two, ascending.
//   - Straightforward evaluation; the ~5e-15/5e-7 precision targets do
//     not call for cancellation-hardened variants of the formula.

package analytic

import "github.com/katalvlaran/polyroots/poly"

// SolveQuadratic returns the real roots of a2·x² + a1·x + a0 = 0 in
// ascending order, 0 to 2 of them.
//
// Complexity: O(1), one allocation at most.
func SolveQuadratic[F poly.Float](a2, a1, a0 F) []F {
	if a2 == 0 {
		return SolveLinear(a1, a0)
	}

	d := a1*a1 - 4*a2*a0
	switch {
	case d < 0:
		// Complex conjugate pair only.
		return nil
	case d == 0:
		return []F{-a1 / (2 * a2)}
	default:
		sq := sqrtF(d)
		x1 := (-a1 - sq) / (2 * a2)
		x2 := (-a1 + sq) / (2 * a2)
		// The ± ordering flips with the sign of a2: compare, don't assume.
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		// A positive but tiny D can still round both quotients to the
		// same float; keep the dedup guarantee at every entry point.
		if x1 == x2 {
			return []F{x1}
		}

		return []F{x1, x2}
	}
}
