package poly

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/polyroots/polyroots/pkg/errors"
)

// Polynomial is a validated list of integer coefficients, highest power first.
// The zero value is the zero polynomial.
type Polynomial struct {
	coeffs []int64
}

// New validates coeffs and returns the polynomial they describe.
// The slice is copied; later changes to coeffs do not affect the result.
func New(coeffs ...int64) (Polynomial, error) {
	if err := validate(coeffs); err != nil {
		return Polynomial{}, err
	}
	if len(coeffs) == 0 {
		return Polynomial{}, nil
	}
	return Polynomial{coeffs: slices.Clone(coeffs)}, nil
}

// MustNew is like New but panics if coeffs is invalid.
func MustNew(coeffs ...int64) Polynomial {
	p, err := New(coeffs...)
	if err != nil {
		panic(err)
	}
	return p
}

func validate(coeffs []int64) error {
	if len(coeffs) == 0 {
		return nil
	}
	if coeffs[0] == 0 {
		return errors.New(errors.ErrCodeInvalidPolynomial, "leading coefficient must be non-zero")
	}
	for i, c := range coeffs {
		if c == math.MinInt64 {
			return errors.New(errors.ErrCodeInvalidPolynomial, "coefficient %d (%d) is out of range", i+1, c)
		}
	}
	return nil
}

// Coefficients returns a copy of the coefficients, highest power first.
func (p Polynomial) Coefficients() []int64 {
	return slices.Clone(p.coeffs)
}

// Len returns the number of coefficients.
func (p Polynomial) Len() int { return len(p.coeffs) }

// Degree returns the highest power with a non-zero coefficient,
// or -1 for the zero polynomial.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 0 }

// Leading returns the leading coefficient, or 0 for the zero polynomial.
func (p Polynomial) Leading() int64 {
	if len(p.coeffs) == 0 {
		return 0
	}
	return p.coeffs[0]
}

// Constant returns the constant term, or 0 for the zero polynomial.
func (p Polynomial) Constant() int64 {
	if len(p.coeffs) == 0 {
		return 0
	}
	return p.coeffs[len(p.coeffs)-1]
}

// String renders p in conventional notation, e.g. "x^2 - 5x + 6".
func (p Polynomial) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}

	var b strings.Builder
	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		power := len(p.coeffs) - i - 1

		mag := c
		switch {
		case b.Len() == 0 && c < 0:
			b.WriteString("-")
			mag = -c
		case b.Len() > 0 && c < 0:
			b.WriteString(" - ")
			mag = -c
		case b.Len() > 0:
			b.WriteString(" + ")
		}

		if mag != 1 || power == 0 {
			fmt.Fprintf(&b, "%d", mag)
		}
		switch {
		case power == 1:
			b.WriteString("x")
		case power > 1:
			fmt.Fprintf(&b, "x^%d", power)
		}
	}
	return b.String()
}
