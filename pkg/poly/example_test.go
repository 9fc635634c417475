package poly_test

import (
	"fmt"

	"github.com/polyroots/polyroots/pkg/errors"
	"github.com/polyroots/polyroots/pkg/poly"
)

func ExamplePolynomial_IntegerRoots() {
	// x^4 - 3x^3 - 75x^2 + 475x - 750
	p, err := poly.New(1, -3, -75, 475, -750)
	if err != nil {
		panic(err)
	}

	fmt.Println(p)
	for _, r := range p.IntegerRoots() {
		fmt.Println(r)
	}
	// Output:
	// x^4 - 3x^3 - 75x^2 + 475x - 750
	// -10
	// 3
	// 5
}

func ExamplePolynomial_Evaluate() {
	// The cube function is the polynomial x^3.
	cube := poly.MustNew(1, 0, 0, 0)
	for _, x := range []int64{0, 2, -2} {
		v, _ := cube.Evaluate(x)
		fmt.Printf("cube(%d) = %d\n", x, v)
	}
	// Output:
	// cube(0) = 0
	// cube(2) = 8
	// cube(-2) = -8
}

func ExampleParse() {
	p, err := poly.Parse([]string{"1", "-5", "6"})
	if err != nil {
		panic(err)
	}
	fmt.Println(p.IsRoot(2), p.IsRoot(4))
	// Output:
	// true false
}

func ExampleNew_invalid() {
	_, err := poly.New(0, 1)
	fmt.Println(errors.GetCode(err))
	fmt.Println(errors.UserMessage(err))
	// Output:
	// INVALID_POLYNOMIAL
	// leading coefficient must be non-zero
}

func ExampleDivisors() {
	fmt.Println(poly.Divisors(12))
	fmt.Println(poly.Divisors(-12))
	fmt.Println(poly.Divisors(0))
	// Output:
	// [1 2 3 4 6 12]
	// [-1 -2 -3 -4 -6 -12]
	// [0]
}
