package poly

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/polyroots/polyroots/pkg/errors"
)

// Parse converts decimal coefficient strings, highest power first, into a
// validated Polynomial. A string that is not an int64 fails with
// INVALID_POLYNOMIAL.
func Parse(args []string) (Polynomial, error) {
	coeffs := make([]int64, 0, len(args))
	for i, arg := range args {
		c, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if err != nil {
			return Polynomial{}, errors.Wrap(errors.ErrCodeInvalidPolynomial, err, "coefficient %d (%q) is not an integer", i+1, arg)
		}
		coeffs = append(coeffs, c)
	}
	return New(coeffs...)
}

// ParseString parses coefficients separated by whitespace and/or commas,
// e.g. "1 -5 6" or "1,-5,6".
func ParseString(s string) (Polynomial, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	return Parse(fields)
}
