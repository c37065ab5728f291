// SPDX-License-Identifier: MIT
// Package: polyroots/analytic
//
// quartic.go - degree-4 solver: dispatch net, depression, final order.
//
// Purpose:
//   - Route a general quartic to the cheapest applicable reduction:
//     degenerate cubic, zero-root factoring, biquadratic, or full
//     depression into Ferrari's method.
//
// Contract:
//   - Every path ends in one normalization: NaN-safe ascending sort,
//     then adjacent exact-equality dedup (no epsilon — callers wanting
//     tolerance-based merging apply their own on top).

package analytic

import "github.com/katalvlaran/polyroots/poly"

// SolveQuartic returns the real roots of
// a4·x⁴ + a3·x³ + a2·x² + a1·x + a0 = 0 in ascending order with exact
// duplicates removed, 0 to 4 of them.
//
// Complexity: O(1); the deepest path is one resolvent cubic plus two
// quadratics.
func SolveQuartic[F poly.Float](a4, a3, a2, a1, a0 F) []F {
	var roots []F
	switch {
	case a4 == 0:
		// Not a quartic at all.
		roots = SolveCubic(a3, a2, a1, a0)

	case a0 == 0:
		// x divides the polynomial: keep root 0, solve the cubic cofactor
		// a4·x³ + a3·x² + a2·x + a1.
		roots = append([]F{0}, SolveCubic(a4, a3, a2, a1)...)

	case a1 == 0 && a3 == 0:
		// Only even powers present.
		roots = solveBiquadratic(a4, a2, a0)

	default:
		// Stage 1: normalize to monic x⁴ + a·x³ + b·x² + c·x + d.
		a := a3 / a4
		b := a2 / a4
		c := a1 / a4
		d := a0 / a4

		// Stage 2: depress with x = y − a/4, eliminating the cube term.
		aa := a * a
		subst := -a3 / (4 * a4)
		p := (8*b - 3*aa) / 8
		q := (aa*a - 4*a*b + 8*c) / 8
		r := (256*d - 3*aa*aa - 64*c*a + 16*aa*b) / 256

		// Stage 3: Ferrari on the depressed form, then undo the shift.
		roots = solveQuarticDepressed(p, q, r)
		for i := range roots {
			roots[i] += subst
		}
	}

	// Single output pass shared by all branches.
	return normalize(roots)
}
