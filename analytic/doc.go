// Package analytic solves polynomial equations of degree 1 through 4
// with closed-form formulas — no iteration, no convergence criteria,
// just the classical algebra evaluated carefully in floating point.
//
// 🚀 What is analytic?
//
//	Four generic entry points, one per degree:
//	  • SolveLinear    — a1·x + a0 = 0
//	  • SolveQuadratic — a2·x² + a1·x + a0 = 0 (discriminant branches)
//	  • SolveCubic     — a3·x³ + ... = 0 (Cardano + trigonometric branch)
//	  • SolveQuartic   — a4·x⁴ + ... = 0 (Ferrari's resolvent method)
//
//	Coefficients are ordered highest degree first and may be float32 or
//	float64 (anything satisfying poly.Float). Results come back in the
//	same type, sorted ascending, with adjacent exact duplicates removed.
//
// ✨ Guarantees:
//   - Total: every float input is accepted — NaN/±Inf propagate as
//     NaN/±Inf roots or an empty result, never a panic or an error.
//   - A zero leading coefficient degrades the degree instead of failing:
//     SolveQuartic(0, a, b, c, d) ≡ SolveCubic(a, b, c, d).
//   - Precision: returned roots satisfy the equation to roughly 5e-15
//     relative error for float64 and 5e-7 for float32.
//   - No global state; safe for unlimited concurrent use.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polyroots/analytic"
//
//	xs := analytic.SolveQuartic(1.0, -10, 35, -50, 24)
//	// xs = [1 2 3 4]
//
// The degree-reduction net underneath is a strict DAG: the quartic
// dispatches to the cubic (degenerate or zero constant term), to the
// biquadratic (odd powers absent), or depresses itself and factors via
// the resolvent cubic; the cubic dispatches to the quadratic or
// depresses itself; the quadratic dispatches to the linear solver.
package analytic
