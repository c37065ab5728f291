// SPDX-License-Identifier: MIT
// Package: polyroots/poly
//
// eval.go - Horner evaluation, formal derivative, effective degree.
//
// Purpose:
//   - Evaluate polynomials given as coefficient slices, highest degree
//     first ([]F{a, b, c} reads a·x² + b·x + c).
//   - Produce the formal derivative in the same convention.
//   - Report the effective degree after leading-zero trim.
//
// Contract:
//   - All functions are total: NaN/±Inf inputs yield float answers (or
//     nil/-1), never a panic.
//   - Eval is O(n) time, zero allocations. Derivative is O(n) time with
//     one output allocation. Degree is O(n) time, zero allocations.
//
// AI-Hints:
//   - Need p(x) and p′(x) together (Newton polishing)? Call Eval twice;
//     a fused Horner pass is not worth the API surface at n ≤ 5.

package poly

// Eval computes p(x) by Horner's scheme. The empty (zero) polynomial
// evaluates to 0 everywhere.
func Eval[F Float](coeffs []F, x F) F {
	if len(coeffs) == 0 {
		return 0
	}

	// Seed with the leading coefficient instead of 0: one multiply
	// fewer, and 0·x never poisons evaluation at x = ±Inf with NaN.
	acc := coeffs[0]
	for _, c := range coeffs[1:] {
		acc = acc*x + c
	}

	return acc
}

// Derivative returns the coefficients of p′, highest degree first.
// Constant and empty inputs have a zero derivative, reported as nil.
func Derivative[F Float](coeffs []F) []F {
	n := len(coeffs)
	if n <= 1 {
		return nil
	}

	out := make([]F, n-1)
	for i := 0; i < n-1; i++ {
		// The term coeffs[i]·x^(n-1-i) differentiates to
		// coeffs[i]·(n-1-i)·x^(n-2-i).
		out[i] = coeffs[i] * F(n-1-i)
	}

	return out
}

// Degree returns the index of the leading non-zero coefficient counted
// from the constant term, i.e. the effective degree of p. The zero
// polynomial (all-zero or empty slice) has degree -1. A NaN leading
// coefficient counts as significant.
func Degree[F Float](coeffs []F) int {
	for i, c := range coeffs {
		if c != 0 {
			return len(coeffs) - 1 - i
		}
	}

	return -1
}
