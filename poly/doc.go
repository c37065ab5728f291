// Package poly holds the numeric core shared by every solver in
// polyroots: the generic coefficient constraint and a handful of
// polynomial primitives.
//
// 🚀 What is poly?
//
//	The smallest useful vocabulary for talking about univariate
//	polynomials with floating-point coefficients:
//	  • Float      — the type set (~float32 | ~float64) all solvers accept
//	  • Eval       — Horner evaluation p(x)
//	  • Derivative — formal derivative p′ as a new coefficient slice
//	  • Degree     — effective degree after leading-zero trim
//	  • Epsilon    — machine epsilon of the instantiated float type
//
// Coefficient convention (used module-wide): highest degree first, so
// []F{a, b, c} reads a·x² + b·x + c. The zero polynomial is any
// all-zero (or empty) slice.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polyroots/poly"
//
//	p := []float64{1, -3, 2}        // x² − 3x + 2
//	y := poly.Eval(p, 1.0)          // 0
//	d := poly.Derivative(p)         // [2, -3] = 2x − 3
//	n := poly.Degree(p)             // 2
//
// Every function is total: any float input (including NaN and ±Inf)
// yields a float answer, never a panic.
package poly
