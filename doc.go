// Package polyroots finds the real roots of low-degree polynomial
// equations the analytical way — closed-form formulas, not iterative
// approximation.
//
// 🚀 What is polyroots?
//
//	A small, thread-safe, allocation-light library that brings together:
//		• Linear & quadratic solvers: the classics, done carefully
//		• Cubic solver: Cardano's formula + the trigonometric branch
//		  for three real roots (casus irreducibilis)
//		• Quartic solver: Ferrari's method via the resolvent cubic,
//		  with a dedicated biquadratic fast path
//		• Generic coefficients: float32 and float64 through one type set
//
// ✨ Why choose polyroots?
//
//   - Predictable – every solve is a fixed, branch-counted formula chain
//   - Total – no panics, no errors: NaN/Inf in, NaN/Inf (or nothing) out
//   - Ordered – roots come back ascending and deduplicated, always
//   - Pure Go core – the solver chain has zero runtime dependencies
//
// Everything is organized under these subpackages:
//
//	analytic/ — SolveLinear, SolveQuadratic, SolveCubic, SolveQuartic
//	poly/     — shared numeric core: Float constraint, Horner evaluation,
//	            formal derivative, degree
//	examples/ — runnable demos (conic intersection, root plotting)
//
// Quick sketch of the quartic pipeline:
//
//	x⁴+ax³+bx²+cx+d ──depress──▶ y⁴+py²+qy+r ──resolvent──▶ 8m³+8pm²+(2p²−8r)m−q²
//	                                   │                          │
//	                                   ▼                          ▼
//	                          two quadratics  ◀──factor──  positive root m₀
//
//	go get github.com/katalvlaran/polyroots/analytic
package polyroots
