// SPDX-License-Identifier: MIT
// Package: polyroots/internal/refsolve
//
// refsolve.go - companion-matrix reference root finder.
//
// Purpose:
//   - Give the closed-form solvers an independent cross-check built on
//     a completely different algorithm (dense eigendecomposition), so
//     test agreement actually means something.
//
// Contract:
//   - Coefficients arrive highest degree first, same as poly.Eval.
//   - Only numerically real eigenvalues are kept; conjugate pairs with
//     |Im| above the tolerance are dropped, not rounded.
//   - Output is ascending. Multiple roots surface once per eigenvalue,
//     so callers compare against separated-root inputs.

// Package refsolve computes real polynomial roots by eigensolving the
// companion matrix. It is the slow, allocating way to solve a quartic,
// which is exactly why it lives in internal: its job is to referee the
// analytic package in tests, not to serve callers.
package refsolve

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// imagTol bounds |Im(λ)| relative to max(1, |Re(λ)|) for an eigenvalue
// to count as real. Loose enough to absorb QR rounding on conjugate
// pairs that are mathematically real, tight enough to reject genuine
// complex pairs.
const imagTol = 1e-8

var (
	// ErrDegreeZero is returned when, after trimming leading zeros,
	// no x term survives: constants have no roots to report.
	ErrDegreeZero = errors.New("refsolve: polynomial degree is zero")

	// ErrEigenFailed is returned if the eigendecomposition of the
	// companion matrix does not converge.
	ErrEigenFailed = errors.New("refsolve: companion matrix eigendecomposition failed")
)

// Roots returns the ascending real roots of the polynomial with the
// given coefficients, highest degree first.
// Complexity: O(n³) time, O(n²) memory for degree n.
func Roots(coeffs []float64) ([]float64, error) {
	// Stage 1: strip leading zeros so the companion matrix reflects
	// the true degree.
	cs := coeffs
	for len(cs) > 0 && cs[0] == 0 {
		cs = cs[1:]
	}
	if len(cs) < 2 {
		return nil, ErrDegreeZero
	}

	// Stage 2: degree 1 needs no linear algebra.
	if len(cs) == 2 {
		return []float64{-cs[1] / cs[0]}, nil
	}

	// Stage 3: companion matrix of the monic polynomial — ones on the
	// subdiagonal, negated monic coefficients down the last column.
	n := len(cs) - 1
	c := mat.NewDense(n, n, nil)
	for r := 1; r < n; r++ {
		c.Set(r, r-1, 1)
	}
	for r := 0; r < n; r++ {
		c.Set(r, n-1, -cs[n-r]/cs[0])
	}

	// Stage 4: eigenvalues only, then keep the numerically real ones.
	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return nil, ErrEigenFailed
	}
	out := make([]float64, 0, n)
	for _, v := range eig.Values(nil) {
		re, im := real(v), imag(v)
		if math.Abs(im) <= imagTol*math.Max(1, math.Abs(re)) {
			out = append(out, re)
		}
	}
	sort.Float64s(out)

	return out, nil
}
