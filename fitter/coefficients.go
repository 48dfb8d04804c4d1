package fitter

import (
	"fmt"
	"math"
)

// Coefficients holds the ordered coefficient triple (a, b, c) of the fitted
// curve y = a*x² + b*x + c.
type Coefficients[T Float] struct {
	// A is the quadratic coefficient.
	A T
	// B is the linear coefficient.
	B T
	// C is the constant term.
	C T
}

// Evaluate returns the fitted curve value a*x² + b*x + c at x.
func (c Coefficients[T]) Evaluate(x T) T {
	return c.A*x*x + c.B*x + c.C
}

// IsFinite reports whether all three coefficients are finite.
//
// It returns false when the fit was degenerate (fewer than 3 points or
// fewer than 3 distinct x values) or when non-finite samples propagated
// into the solve. Callers that need robustness should probe the result of
// Compute with this method.
func (c Coefficients[T]) IsFinite() bool {
	for _, v := range []float64{float64(c.A), float64(c.B), float64(c.C)} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// String returns a human-readable representation of the fitted curve.
func (c Coefficients[T]) String() string {
	return fmt.Sprintf("y = %g*x² + %g*x + %g", float64(c.A), float64(c.B), float64(c.C))
}
