package approx_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/approx"
)

// ExampleEqual shows why tolerant comparison exists: the classic 0.1+0.2
// case compares equal under a magnitude-derived tolerance.
func ExampleEqual() {
	sum := 0.1 + 0.2

	fmt.Println(sum == 0.3)
	fmt.Println(approx.Equal(sum, 0.3))
	// Output:
	// false
	// true
}

// ExampleMag propagates a tolerance through a derived quantity: the
// product a·b is compared under the tolerance of a product, not of a raw
// operand.
func ExampleMag() {
	a, b := 1234.5, 0.0042
	tol := approx.Mag(a).Mul(approx.Mag(b)).Tolerance()

	fmt.Println(approx.EqualTol(a*b, 5.1849, tol))
	// Output:
	// true
}

// ExampleIn demonstrates tolerant interval membership for a half-open
// interval.
func ExampleIn() {
	iv := approx.HalfOpen(0.0, 1.0)

	fmt.Println(approx.In(0.0, iv))
	fmt.Println(approx.In(1.0, iv))
	// Output:
	// true
	// false
}
