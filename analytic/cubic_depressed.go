// SPDX-License-Identifier: MIT
// Package: polyroots/analytic
//
// cubic_depressed.go - Cardano's method for y³ + p·y + q = 0.
//
// Purpose:
//   - Solve the depressed cubic, the workhorse behind SolveCubic and,
//     through the resolvent, behind SolveQuartic.
//
// Contract:
//   - Input is already depressed (no y² term); that is the caller's
//     guarantee, not checked here.
//   - Classification runs on Δ = (q/2)² + (p/3)³:
//     Δ > 0 → one real root (two complex), Cardano's radical formula;
//     Δ == 0 → a multiple root: triple 0 when p == 0, else one simple
//     and one double root from cbrt(-q/2);
//     Δ < 0 → three distinct real roots, evaluated trigonometrically
//     (casus irreducibilis) to avoid complex intermediates.
//   - Output is ascending; adjacent exact duplicates may remain at
//     branch boundaries — callers run the dedup pass.
//
// Complexity: O(1); at most one acos and three cos calls.

package analytic

import (
	"math"

	"github.com/katalvlaran/polyroots/poly"
)

const (
	twoPiThird  = 2 * math.Pi / 3 // 2π/3, the k=1 phase offset
	fourPiThird = 4 * math.Pi / 3 // 4π/3, the k=2 phase offset
)

// solveCubicDepressed returns the real roots of y³ + p·y + q = 0,
// ascending. NaN/±Inf coefficients flow through the Δ > 0 branch and
// surface as NaN roots.
func solveCubicDepressed[F poly.Float](p, q F) []F {
	q2 := q / 2
	p3 := p / 3
	delta := q2*q2 + p3*p3*p3

	switch {
	case delta < 0:
		// Three real roots. Δ < 0 forces p < 0, so the radicands below
		// are positive and the acos argument is within (-1, 1) up to
		// rounding.
		amp := 2 * sqrtF(-p3)
		arg := 3 * q / (2 * p) * sqrtF(-3/p)
		// Rounding can push |arg| a hair past 1 when Δ is barely
		// negative; acos demands [-1, 1].
		if arg < -1 {
			arg = -1
		}
		if arg > 1 {
			arg = 1
		}
		phi := acosF(arg) / 3

		// y_k = amp·cos(phi − 2πk/3); the phase drops monotonically in
		// k, so k = 2, 1, 0 comes out ascending in exact arithmetic.
		// When arg clamps, phi sits on 0 or π/3 and the coincident pair
		// evaluates a last ulp apart in either order; three fixed
		// compare-swaps make the ordering unconditional.
		ys := []F{
			amp * cosF(phi-fourPiThird),
			amp * cosF(phi-twoPiThird),
			amp * cosF(phi),
		}
		if ys[1] < ys[0] {
			ys[0], ys[1] = ys[1], ys[0]
		}
		if ys[2] < ys[1] {
			ys[1], ys[2] = ys[2], ys[1]
		}
		if ys[1] < ys[0] {
			ys[0], ys[1] = ys[1], ys[0]
		}

		return ys

	case delta == 0:
		// Δ == 0 with p == 0 forces q == 0: the triple root 0.
		if p == 0 {
			return []F{0}
		}
		// One simple root 2u and one double root -u.
		u := cbrtF(-q2)
		if u > 0 {
			return []F{-u, 2 * u}
		}

		return []F{2 * u, -u}

	default:
		// One real root by Cardano's formula. NaN Δ also lands here and
		// propagates.
		sqd := sqrtF(delta)

		return []F{cbrtF(-q2+sqd) + cbrtF(-q2-sqd)}
	}
}
