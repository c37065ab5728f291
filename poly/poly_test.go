package poly_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polyroots/poly"
)

// TestEval_KnownValues verifies Horner evaluation against hand-computed
// points for a few small polynomials.
func TestEval_KnownValues(t *testing.T) {
	cases := []struct {
		name   string
		coeffs []float64
		x      float64
		want   float64
	}{
		{"constant", []float64{7}, 3, 7},
		{"line", []float64{2, -1}, 4, 7},
		{"square at root", []float64{1, -3, 2}, 1, 0},
		{"square off root", []float64{1, -3, 2}, 3, 2},
		{"quartic", []float64{1, 0, 0, 0, -1}, 2, 15},
		{"at zero", []float64{5, 4, 3, 2, 1}, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, poly.Eval(tc.coeffs, tc.x), "p(x) must match the hand expansion")
		})
	}
}

// TestEval_ZeroPolynomial confirms that empty and all-zero coefficient
// slices evaluate to 0 everywhere, including at non-finite points.
func TestEval_ZeroPolynomial(t *testing.T) {
	assert.Equal(t, 0.0, poly.Eval(nil, 42.0), "empty slice is the zero polynomial")
	assert.Equal(t, 0.0, poly.Eval([]float64{0, 0, 0}, -1e30), "all-zero slice is the zero polynomial")
	assert.Equal(t, 0.0, poly.Eval(nil, math.Inf(1)), "zero polynomial at +Inf stays 0")
}

// TestEval_NonFinitePropagation checks that NaN coefficients or points
// surface as NaN values rather than panics.
func TestEval_NonFinitePropagation(t *testing.T) {
	nan := math.NaN()
	assert.True(t, math.IsNaN(poly.Eval([]float64{1, nan, 0}, 2)), "NaN coefficient must propagate")
	assert.True(t, math.IsNaN(poly.Eval([]float64{1, -3, 2}, nan)), "NaN point must propagate")
	assert.True(t, math.IsInf(poly.Eval([]float64{1, 0}, math.Inf(1)), 1), "x at +Inf drives a monic line to +Inf")
}

// TestEval_Float32 exercises the float32 instantiation on an exact case.
func TestEval_Float32(t *testing.T) {
	p := []float32{1, -3, 2} // x² − 3x + 2 = (x−1)(x−2)
	assert.Equal(t, float32(0), poly.Eval(p, 2), "exact integer root must evaluate to exactly 0")
	assert.Equal(t, float32(2), poly.Eval(p, 0), "constant term at x=0")
}

// TestDerivative_Basics verifies the formal derivative on degree 0..4.
func TestDerivative_Basics(t *testing.T) {
	assert.Nil(t, poly.Derivative([]float64{}), "empty input has nil derivative")
	assert.Nil(t, poly.Derivative([]float64{9}), "constants have nil derivative")
	assert.Equal(t, []float64{2}, poly.Derivative([]float64{2, -1}), "d/dx (2x−1) = 2")
	assert.Equal(t, []float64{2, -3}, poly.Derivative([]float64{1, -3, 2}), "d/dx (x²−3x+2) = 2x−3")
	assert.Equal(t, []float64{4, 0, 0, 0}, poly.Derivative([]float64{1, 0, 0, 0, -1}), "d/dx (x⁴−1) = 4x³")
}

// TestDegree_LeadingZeros confirms degree counting trims leading zeros
// and reports -1 for the zero polynomial.
func TestDegree_LeadingZeros(t *testing.T) {
	assert.Equal(t, 4, poly.Degree([]float64{3, 0, 0, 0, 1}), "full quartic")
	assert.Equal(t, 2, poly.Degree([]float64{0, 0, 1, -3, 2}), "two leading zeros drop the degree to 2")
	assert.Equal(t, 0, poly.Degree([]float64{0, 5}), "constant after trim")
	assert.Equal(t, -1, poly.Degree([]float64{0, 0}), "all-zero slice is the zero polynomial")
	assert.Equal(t, -1, poly.Degree([]float64{}), "empty slice is the zero polynomial")
}

// TestEpsilon_PerType pins the machine epsilon of both instantiations.
func TestEpsilon_PerType(t *testing.T) {
	assert.Equal(t, math.Nextafter(1, 2)-1, poly.Epsilon[float64](), "float64 epsilon is 2⁻⁵²")
	assert.Equal(t, float64(math.Nextafter32(1, 2)-1), float64(poly.Epsilon[float32]()), "float32 epsilon is 2⁻²³")
}
