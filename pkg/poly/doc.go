// Package poly evaluates integer-coefficient polynomials and finds their
// integer roots.
//
// # Representation
//
// A [Polynomial] is an ordered list of int64 coefficients, highest power
// first; the last coefficient is the constant term:
//
//	[1, -5, 6]  is  x^2 - 5x + 6
//
// The empty list is the zero polynomial. A non-empty list must start with a
// non-zero leading coefficient: [0, 1] is rejected rather than normalized to
// [1]. Coefficients must also have a representable magnitude, which excludes
// math.MinInt64.
//
// Validation happens once, in [New] or [Parse]. Methods on [Polynomial]
// therefore never fail on malformed input. The package-level [Evaluate],
// [IsRoot] and [IntegerRoots] accept raw coefficient slices for callers that
// do not keep a Polynomial around; each runs the same validation and reports
// failures with the INVALID_POLYNOMIAL code from package errors.
//
// # Evaluation
//
// [Polynomial.Value] sums c·x^k over all terms using math/big, so the result
// is exact for any int64 point. [Polynomial.Evaluate] returns the same value
// as an int64 and reports OVERFLOW when it does not fit. [Polynomial.IsRoot]
// is decided on the exact value and is never fooled by wrapped arithmetic.
//
// # Root finding
//
// [Polynomial.IntegerRoots] applies the rational root theorem restricted to
// integers: every integer root divides the constant term, so candidates are
// p/q for p a divisor of the constant term and q a divisor of the leading
// coefficient, kept only when q divides p exactly. For each candidate
// magnitude m, +m is appended to the result when it is a root and -m is
// inserted at the front, so negative roots precede positive ones. Each root
// appears once.
//
// When the constant term is zero, 0 is a root and the factor x^k is divided
// out before the search, so roots of x^2 - x are reported as [0, 1].
//
// All functions are pure and safe for concurrent use.
package poly
