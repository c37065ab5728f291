// SPDX-License-Identifier: MIT
// Package: polyroots/analytic
//
// cubic.go - degree-3 solver: degenerate dispatch, depression, shift.

package analytic

import "github.com/katalvlaran/polyroots/poly"

// SolveCubic returns the real roots of a3·x³ + a2·x² + a1·x + a0 = 0 in
// ascending order with exact duplicates removed.
//
// Contract:
//   - a3 == 0 delegates to SolveQuadratic (0–2 roots).
//   - Otherwise a real cubic always has at least one real root, so a
//     finite well-posed input yields 1–3 roots.
//
// Complexity: O(1), one result allocation.
func SolveCubic[F poly.Float](a3, a2, a1, a0 F) []F {
	// Stage 1: degenerate leading coefficient → lower degree.
	if a3 == 0 {
		return SolveQuadratic(a2, a1, a0)
	}

	// Stage 2: normalize to monic x³ + a·x² + b·x + c.
	a := a2 / a3
	b := a1 / a3
	c := a0 / a3

	// Stage 3: depress with x = y − a/3, eliminating the square term:
	// y³ + p·y + q with p = b − a²/3, q = 2a³/27 − ab/3 + c.
	p := b - a*a/3
	q := 2*a*a*a/27 - a*b/3 + c
	subst := -a / 3

	// Stage 4: solve the depressed form and undo the substitution.
	ys := solveCubicDepressed(p, q)
	for i := range ys {
		ys[i] += subst
	}

	// The shift preserves the depressed solver's ordering, so collapsing
	// adjacent exact duplicates completes the normalization.
	return dedupAdjacent(ys)
}
