// SPDX-License-Identifier: MIT
// Package: polyroots/poly
//
// types.go - generic coefficient constraint and float-type metadata.
//
// Purpose:
//   - Define Float, the type set every polyroots solver is generic over.
//   - Expose Epsilon so callers can scale residual tolerances to the
//     precision of the instantiated type.
//
// Contract:
//   - Epsilon[float32]() = 2⁻²³; Epsilon[float64]() = 2⁻⁵².
//   - O(1) time, zero allocations, no panics, no global state.

package poly

// Float is the coefficient type set accepted by all polyroots solvers:
// any type whose underlying type is float32 or float64.
type Float interface {
	~float32 | ~float64
}

const (
	eps32 = 0x1p-23 // machine epsilon of float32
	eps64 = 0x1p-52 // machine epsilon of float64
)

// Epsilon returns the machine epsilon of F: the gap between 1 and the
// next representable value. Residual checks on solver output should be
// budgeted in multiples of this.
func Epsilon[F Float]() F {
	// Adding eps64 to 1 survives in float64 and is absorbed in float32,
	// which identifies the instantiated type without unsafe or reflect.
	var one F = 1
	if one+F(eps64) != one {
		return F(eps64)
	}

	return F(eps32)
}
