package analytic

// Instantiated aliases so the black-box test package can exercise the
// unexported halves of the solver chain directly.
var (
	DepressedCubic64   = solveCubicDepressed[float64]
	DepressedCubic32   = solveCubicDepressed[float32]
	DepressedQuartic64 = solveQuarticDepressed[float64]
	Biquadratic64      = solveBiquadratic[float64]
	PickResolvent64    = pickResolventRoot[float64]
)
