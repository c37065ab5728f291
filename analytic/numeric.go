// SPDX-License-Identifier: MIT
// Package: polyroots/analytic
//
// numeric.go - float-generic math shims and root normalization.
//
// Purpose:
//   - Bridge math.Sqrt/Cbrt/Acos/Cos (float64-only) to any poly.Float
//     by round-tripping through float64.
//   - Provide the one normalization every public solver ends with:
//     NaN-safe ascending sort + exact-equality adjacent dedup.
//
// Contract:
//   - sortRoots never panics, whatever mix of NaN/±Inf it is handed.
//   - dedupAdjacent uses exact representation equality; tolerance-based
//     merging is the caller's policy, not ours.

package analytic

import (
	"math"
	"sort"

	"github.com/katalvlaran/polyroots/poly"
)

// Round-tripping float32 through float64 costs one conversion each way
// and is correctly rounded for these functions, which beats maintaining
// a float32-native ladder.
func sqrtF[F poly.Float](x F) F { return F(math.Sqrt(float64(x))) }
func cbrtF[F poly.Float](x F) F { return F(math.Cbrt(float64(x))) }
func acosF[F poly.Float](x F) F { return F(math.Acos(float64(x))) }
func cosF[F poly.Float](x F) F  { return F(math.Cos(float64(x))) }

// normalize is the shared output pass: ascending order, then adjacent
// exact duplicates collapsed. Returns the (re-sliced) input.
func normalize[F poly.Float](rs []F) []F {
	sortRoots(rs)

	return dedupAdjacent(rs)
}

// sortRoots orders rs ascending. The less function reports strict <,
// so any pair involving NaN ranks as equal — the sort stays total and
// never panics on non-finite values.
func sortRoots[F poly.Float](rs []F) {
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
}

// dedupAdjacent collapses runs of exactly equal neighbours in place.
// NaN never compares equal to NaN, so NaN entries survive untouched.
func dedupAdjacent[F poly.Float](rs []F) []F {
	if len(rs) < 2 {
		return rs
	}

	out := rs[:1]
	for _, r := range rs[1:] {
		if r != out[len(out)-1] {
			out = append(out, r)
		}
	}

	return out
}
