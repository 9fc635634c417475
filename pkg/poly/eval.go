package poly

import (
	"math/big"

	"github.com/polyroots/polyroots/pkg/errors"
)

// Value returns the exact value of p at x.
// The zero polynomial evaluates to 0 everywhere.
func (p Polynomial) Value(x int64) *big.Int {
	sum := new(big.Int)
	if len(p.coeffs) == 0 {
		return sum
	}

	// Horner's rule: one multiply and one add per coefficient.
	bx := big.NewInt(x)
	c := new(big.Int)
	for _, coeff := range p.coeffs {
		sum.Mul(sum, bx)
		sum.Add(sum, c.SetInt64(coeff))
	}
	return sum
}

// Evaluate returns the value of p at x.
// It fails with OVERFLOW when the exact value does not fit in an int64.
func (p Polynomial) Evaluate(x int64) (int64, error) {
	v := p.Value(x)
	if !v.IsInt64() {
		return 0, errors.New(errors.ErrCodeOverflow, "value of %s at x = %d exceeds the int64 range", p, x)
	}
	return v.Int64(), nil
}

// IsRoot reports whether p evaluates to exactly zero at x.
func (p Polynomial) IsRoot(x int64) bool {
	return p.Value(x).Sign() == 0
}

// Evaluate validates coeffs and returns the polynomial's value at x.
func Evaluate(coeffs []int64, x int64) (int64, error) {
	p, err := New(coeffs...)
	if err != nil {
		return 0, err
	}
	return p.Evaluate(x)
}

// IsRoot validates coeffs and reports whether x is a root.
func IsRoot(coeffs []int64, x int64) (bool, error) {
	p, err := New(coeffs...)
	if err != nil {
		return false, err
	}
	return p.IsRoot(x), nil
}
