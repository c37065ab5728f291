// SPDX-License-Identifier: MIT
// Package: polyroots/analytic
//
// quartic_depressed.go - Ferrari's method for y⁴ + p·y² + q·y + r = 0.
//
// Purpose:
//   - Solve the depressed quartic by factoring it into two quadratics
//     parametrized by a real root of the resolvent cubic.
//
// Contract:
//   - Input is already depressed (no y³ term); the caller guarantees it.
//   - q² == 0 — including |q| small enough for q·q to underflow —
//     short-circuits to the biquadratic path.
//   - Otherwise, with m0 a real resolvent root and 2m0 > 0:
//     y⁴ + p·y² + q·y + r =
//     (y² + s·y + (p/2 + m0 − q/(2s))) · (y² − s·y + (p/2 + m0 + q/(2s))),
//     where s = sqrt(2·m0).
//   - Output order is unspecified and duplicates may remain; the public
//     quartic boundary normalizes.
//
// AI-Hints:
//   - The resolvent 8m³ + 8p·m² + (2p² − 8r)·m − q² evaluates to −q² < 0
//     at m = 0, so whenever q² > 0 a positive real root exists on paper.
//     Rounding in the cubic can still deliver that root as exactly 0 and
//     strand the selection scan; the empty result is the honest answer
//     then, within the 0–4 root contract.

package analytic

import "github.com/katalvlaran/polyroots/poly"

// solveQuarticDepressed returns the real roots of y⁴ + p·y² + q·y + r = 0.
func solveQuarticDepressed[F poly.Float](p, q, r F) []F {
	// A zero — or underflowed — q² leaves the resolvent below without its
	// constant term, which is its only link to the odd part of the
	// quartic. At that scale the even part is the equation: solve it as
	// a biquadratic.
	if q*q == 0 {
		return solveBiquadratic(1, p, r)
	}

	// Stage 1: the resolvent cubic 8m³ + 8p·m² + (2p² − 8r)·m − q² = 0.
	ms := SolveCubic(8, 8*p, 2*p*p-8*r, -q*q)

	// Stage 2: pick the auxiliary root m0.
	m0, ok := pickResolventRoot(p, ms)
	if !ok {
		// Non-finite coefficients, or a resolvent root rounded down to
		// exactly 0, leave no workable radical.
		return nil
	}

	// Stage 3: factor into two quadratics and solve both.
	s := sqrtF(2 * m0)
	shift := q / (2 * s)
	base := p/2 + m0

	roots := SolveQuadratic(1, s, base-shift)

	return append(roots, SolveQuadratic(1, -s, base+shift)...)
}

// pickResolventRoot selects the Ferrari auxiliary root m0 from the real
// resolvent roots ms (ascending, as SolveCubic returns them).
//
// The first scan applies the classical criterion 2p + 2m0 > 0 together
// with 2m0 > 0, which keeps every radical in the factorization real.
// Floating-point rounding — and quartics with roots of multiplicity ≥ 3,
// where the resolvent roots crowd the boundary — can leave no candidate
// passing it, so a second scan relaxes to 2m0 > 0 alone: any positive
// resolvent root factors the quartic. Both scans prefer the largest
// root; a larger m0 keeps sqrt(2m0) away from zero and the q/(2s) term
// tame.
func pickResolventRoot[F poly.Float](p F, ms []F) (F, bool) {
	for i := len(ms) - 1; i >= 0; i-- {
		if m := ms[i]; 2*p+2*m > 0 && 2*m > 0 {
			return m, true
		}
	}
	for i := len(ms) - 1; i >= 0; i-- {
		if m := ms[i]; 2*m > 0 {
			return m, true
		}
	}

	return 0, false
}
