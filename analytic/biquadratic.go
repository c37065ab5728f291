// SPDX-License-Identifier: MIT
// Package: polyroots/analytic
//
// biquadratic.go - even-powers-only quartic via the z = x² substitution.

package analytic

import "github.com/katalvlaran/polyroots/poly"

// solveBiquadratic returns the real roots of a4·x⁴ + a2·x² + a0 = 0,
// sorted and deduplicated. The caller guarantees a4 != 0 — this path is
// only reached when a genuine quartic has both odd coefficients zero.
//
// Each root z of the quadratic a4·z² + a2·z + a0 contributes:
//   - z > 0  → the pair ±sqrt(z)
//   - z == 0 → the single root 0
//   - z < 0  → nothing (x would be complex)
func solveBiquadratic[F poly.Float](a4, a2, a0 F) []F {
	var roots []F
	for _, z := range SolveQuadratic(a4, a2, a0) {
		switch {
		case z > 0:
			sq := sqrtF(z)
			roots = append(roots, -sq, sq)
		case z == 0:
			roots = append(roots, 0)
		}
		// z < 0 or NaN: no real square root, contributes nothing.
	}

	return normalize(roots)
}
