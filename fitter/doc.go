// Package fitter computes least-squares best-fit quadratic curves from
// accumulated sample points.
//
// A Fitter owns an ordered collection of (x, y) observations and solves, on
// demand, the three coefficients of y = a*x² + b*x + c that minimize the sum
// of squared vertical residuals. The solve is the closed-form solution of the
// quadratic normal equations, built from power sums of the accumulated
// samples — no iterative solver is involved.
//
// # Basic Usage
//
//	qf := fitter.NewWithCapacity[float64](8)
//	qf.Add(-1, 11.11)
//	qf.Add(0, 0.01)
//	qf.Add(1, -8.63)
//
//	coeffs := qf.Compute()
//	fmt.Printf("a=%.2f b=%.2f c=%.2f\n", coeffs.A, coeffs.B, coeffs.C)
//
// Compute is non-destructive: it can be called repeatedly and interleaved
// with further Add calls. Clear resets the fitter for reuse while keeping
// the allocated sample storage.
//
// # Degenerate Inputs
//
// The solver never validates its input. With fewer than 3 samples, or with
// fewer than 3 distinct x values, the shared denominator of the closed form
// evaluates to zero and the coefficients come out as ±Inf or NaN under
// standard IEEE-754 division rules. This is documented behavior, not an
// error: callers that care should check Len and probe the result with
// Coefficients.IsFinite. NaN or Inf samples likewise propagate through the
// arithmetic unchecked.
//
// # Numeric Types
//
// Fitter is generic over Float (float32 or float64). The formulas are
// type-parametric; only the exponentiation primitive goes through float64
// (math.Pow), matching standard pow semantics where 0^0 = 1.
//
// # Thread Safety
//
// A Fitter is designed for single-owner, single-goroutine use. Add, SetAt
// and Clear must not race with each other or with Compute/At on the same
// instance; wrap the fitter with external synchronization if you need
// concurrent access.
package fitter
