package fitter_test

import (
	"fmt"

	"github.com/arloliu/quadfit/fitter"
)

// ExampleFitter_Compute fits three noise-free samples of
// y = 1.23x² - 9.87x + 0.01 and recovers the coefficients exactly.
func ExampleFitter_Compute() {
	qf := fitter.New[float64]()
	qf.Add(-1, 11.11)
	qf.Add(0, 0.01)
	qf.Add(1, -8.63)

	coeffs := qf.Compute()

	fmt.Printf("a = %.2f\n", coeffs.A)
	fmt.Printf("b = %.2f\n", coeffs.B)
	fmt.Printf("c = %.2f\n", coeffs.C)

	// Output:
	// a = 1.23
	// b = -9.87
	// c = 0.01
}

// ExampleCoefficients_IsFinite shows the degeneracy probe for an
// underdetermined sample set.
func ExampleCoefficients_IsFinite() {
	qf := fitter.New[float64]()
	qf.Add(1, 2)
	qf.Add(2, 3)

	coeffs := qf.Compute()
	fmt.Println(coeffs.IsFinite())

	// Output:
	// false
}
