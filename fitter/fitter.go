package fitter

import (
	"math"

	"github.com/arloliu/quadfit/errs"
)

// Float constrains the numeric types a Fitter can operate on.
//
// Any IEEE-754 floating-point representation is a valid instantiation; the
// closed-form solve behaves identically for both precisions apart from the
// accumulated rounding error.
type Float interface {
	~float32 | ~float64
}

// Point represents one (x, y) observation.
//
// A point is immutable once added to a fitter except through SetAt.
type Point[T Float] struct {
	X T
	Y T
}

// Fitter accumulates sample points and solves the least-squares quadratic
// regression in closed form.
//
// The zero value is not ready for use; create instances with New or
// NewWithCapacity. Each fitter exclusively owns its sample storage: nothing
// the fitter returns aliases the internal slice.
type Fitter[T Float] struct {
	samples []Point[T]
}

// New creates an empty fitter.
func New[T Float]() *Fitter[T] {
	return &Fitter[T]{}
}

// NewWithCapacity creates an empty fitter that pre-allocates storage for n
// points.
//
// The capacity is a performance hint only; it does not change observable
// behavior, and the fitter grows past it as needed.
func NewWithCapacity[T Float](n int) *Fitter[T] {
	return &Fitter[T]{samples: make([]Point[T], 0, n)}
}

// Add appends a new sample point to the end of the collection.
//
// The values are not validated: NaN and Inf pass through silently and
// propagate into the computed coefficients. Add always succeeds.
func (f *Fitter[T]) Add(x, y T) {
	f.samples = append(f.samples, Point[T]{X: x, Y: y})
}

// At returns the point at idx.
//
// Returns errs.ErrIndexOutOfRange when idx is negative or not less than
// Len().
func (f *Fitter[T]) At(idx int) (Point[T], error) {
	if idx < 0 || idx >= len(f.samples) {
		return Point[T]{}, errs.ErrIndexOutOfRange
	}

	return f.samples[idx], nil
}

// SetAt replaces the point at idx.
//
// Returns errs.ErrIndexOutOfRange when idx is negative or not less than
// Len().
func (f *Fitter[T]) SetAt(idx int, pt Point[T]) error {
	if idx < 0 || idx >= len(f.samples) {
		return errs.ErrIndexOutOfRange
	}
	f.samples[idx] = pt

	return nil
}

// Len returns the number of accumulated points.
func (f *Fitter[T]) Len() int {
	return len(f.samples)
}

// Clear removes all accumulated points.
//
// The underlying storage capacity is retained so a cleared fitter can be
// refilled without reallocating.
func (f *Fitter[T]) Clear() {
	f.samples = f.samples[:0]
}

// Clone returns a fitter with a duplicated copy of the sample storage.
//
// The clone and the receiver are fully independent afterwards.
func (f *Fitter[T]) Clone() *Fitter[T] {
	clone := &Fitter[T]{samples: make([]Point[T], len(f.samples))}
	copy(clone.samples, f.samples)

	return clone
}

// Compute solves for the quadratic coefficients fitting all currently
// accumulated points in the least-squares sense.
//
// The solve evaluates the closed-form solution of the quadratic normal
// equations. With the power sums
//
//	s0j = Σ xᵢʲ        for j = 0..4
//	s1j = Σ xᵢʲ * yᵢ   for j = 0..2
//
// all three coefficients share the denominator
//
//	D = s00*s02*s04 - s01²*s04 - s00*s03² + 2*s01*s02*s03 - s02³
//
// which is computed once. Compute is side-effect-free: it can be called any
// number of times and interleaved with Add.
//
// Degenerate inputs (fewer than 3 points, or fewer than 3 distinct x values)
// drive D to zero and yield ±Inf or NaN coefficients under IEEE-754 division
// rules; Compute never returns an error. See Coefficients.IsFinite.
func (f *Fitter[T]) Compute() Coefficients[T] {
	s00 := f.powSum(0)
	s01 := f.powSum(1)
	s02 := f.powSum(2)
	s03 := f.powSum(3)
	s04 := f.powSum(4)

	s10 := f.powSumY(0)
	s11 := f.powSumY(1)
	s12 := f.powSumY(2)

	d := s00*s02*s04 - s01*s01*s04 - s00*s03*s03 + 2*s01*s02*s03 - s02*s02*s02

	a := (s10*s01*s03 - s11*s00*s03 - s10*s02*s02 + s11*s01*s02 + s12*s00*s02 - s12*s01*s01) / d
	b := (s11*s00*s04 - s10*s01*s04 + s10*s02*s03 - s12*s00*s03 - s11*s02*s02 + s12*s01*s02) / d
	c := (s10*s02*s04 - s11*s01*s04 - s10*s03*s03 + s11*s02*s03 + s12*s01*s03 - s12*s02*s02) / d

	return Coefficients[T]{A: a, B: b, C: c}
}

// powSum computes Σ xᵢʲ over all accumulated points.
//
// Exponentiation follows math.Pow semantics, so 0^0 contributes 1 and the
// j=0 sum equals the point count.
func (f *Fitter[T]) powSum(j int) T {
	var sum T
	for i := range f.samples {
		sum += T(math.Pow(float64(f.samples[i].X), float64(j)))
	}

	return sum
}

// powSumY computes Σ xᵢʲ * yᵢ over all accumulated points.
func (f *Fitter[T]) powSumY(j int) T {
	var sum T
	for i := range f.samples {
		sum += T(math.Pow(float64(f.samples[i].X), float64(j))) * f.samples[i].Y
	}

	return sum
}

// Stats computes the coefficient of determination (R²) and the root mean
// square error of the given coefficients against the accumulated samples in
// a single pass.
//
// Both values are reported in float64 regardless of T. An empty fitter
// yields (0, 0); a sample set with zero variance in y also reports R² = 0.
func (f *Fitter[T]) Stats(c Coefficients[T]) (rsquared, rmse float64) {
	n := len(f.samples)
	if n == 0 {
		return 0, 0
	}

	meanY := 0.0
	for i := range f.samples {
		meanY += float64(f.samples[i].Y)
	}
	meanY /= float64(n)

	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares

	for i := range f.samples {
		yi := float64(f.samples[i].Y)
		predicted := float64(c.Evaluate(f.samples[i].X))

		ssTot += (yi - meanY) * (yi - meanY)
		residual := yi - predicted
		ssRes += residual * residual
	}

	if ssTot != 0 {
		rsquared = 1.0 - (ssRes / ssTot)
	}
	rmse = math.Sqrt(ssRes / float64(n))

	return rsquared, rmse
}
