// Package quadfit computes least-squares best-fit quadratic curves
// (y = a*x² + b*x + c) from accumulated sample points.
//
// The core lives in the fitter package: a generic accumulator that callers
// feed points into incrementally and query for the three fitted coefficients
// at any time, solved in closed form from the quadratic normal equations.
// The snapshot package adds a compact, optionally compressed binary format
// for persisting sample sets and restoring them into fitters.
//
// # Basic Usage
//
//	import "github.com/arloliu/quadfit"
//
//	coeffs, err := quadfit.Fit(
//	    []float64{-1, 0, 1},
//	    []float64{11.11, 0.01, -8.63},
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("a=%.2f b=%.2f c=%.2f\n", coeffs.A, coeffs.B, coeffs.C)
//
// For incremental accumulation, float32 fitting, indexed sample access or
// fit diagnostics, use the fitter package directly:
//
//	qf := fitter.NewWithCapacity[float64](n)
//	qf.Add(x, y)
//	coeffs := qf.Compute()
//
// # Package Structure
//
// This package provides convenient one-shot wrappers around the fitter
// package for the most common case. For fine-grained control, use the
// fitter and snapshot packages directly.
package quadfit

import (
	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/fitter"
)

// Fit computes the least-squares quadratic coefficients for the paired
// sample slices xs and ys.
//
// Returns errs.ErrLengthMismatch when the slices differ in length. Fewer
// than 3 samples, or fewer than 3 distinct x values, yield non-finite
// coefficients rather than an error; see fitter.Coefficients.IsFinite.
func Fit(xs, ys []float64) (fitter.Coefficients[float64], error) {
	if len(xs) != len(ys) {
		return fitter.Coefficients[float64]{}, errs.ErrLengthMismatch
	}

	qf := fitter.NewWithCapacity[float64](len(xs))
	for i := range xs {
		qf.Add(xs[i], ys[i])
	}

	return qf.Compute(), nil
}

// FitPoints computes the least-squares quadratic coefficients for the given
// sample points.
func FitPoints(points []fitter.Point[float64]) fitter.Coefficients[float64] {
	qf := fitter.NewWithCapacity[float64](len(points))
	for i := range points {
		qf.Add(points[i].X, points[i].Y)
	}

	return qf.Compute()
}
