package poly

import (
	"context"

	"github.com/hashicorp/go-set/v3"
)

// IntegerRoots returns the distinct integer roots of p.
//
// Negative roots come first, positive roots last, in the order described in
// the package documentation. The zero polynomial has every integer as a root
// and cannot be enumerated, so it reports none, as does a non-zero constant.
// The result is never nil.
func (p Polynomial) IntegerRoots() []int64 {
	roots, _ := p.IntegerRootsContext(context.Background())
	return roots
}

// IntegerRootsContext is like IntegerRoots but gives up with ctx.Err() once
// ctx is done. Large constant terms make the divisor search slow, so callers
// serving untrusted input should pass a deadline.
func (p Polynomial) IntegerRootsContext(ctx context.Context) ([]int64, error) {
	if len(p.coeffs) < 2 {
		return []int64{}, nil
	}

	seen := set.New[int64](len(p.coeffs))

	// x^k divides p when its last k coefficients are zero.
	coeffs := p.coeffs
	for len(coeffs) > 1 && coeffs[len(coeffs)-1] == 0 {
		coeffs = coeffs[:len(coeffs)-1]
	}
	hasZero := len(coeffs) < len(p.coeffs)
	if hasZero {
		seen.Insert(0)
	}

	var head, tail []int64
	if len(coeffs) > 1 {
		deflated := Polynomial{coeffs: coeffs}
		nums, err := DivisorsContext(ctx, deflated.Constant())
		if err != nil {
			return nil, err
		}
		dens, err := DivisorsContext(ctx, deflated.Leading())
		if err != nil {
			return nil, err
		}
		steps := 0
		for _, num := range nums {
			for _, den := range dens {
				if steps++; steps%checkEvery == 0 {
					if err := ctx.Err(); err != nil {
						return nil, err
					}
				}
				if num%den != 0 {
					continue
				}
				m := num / den
				if m < 0 {
					m = -m
				}
				if deflated.IsRoot(m) && seen.Insert(m) {
					tail = append(tail, m)
				}
				if deflated.IsRoot(-m) && seen.Insert(-m) {
					head = append(head, -m)
				}
			}
		}
	}

	// head collects front insertions in discovery order; the latest is first.
	roots := make([]int64, 0, seen.Size())
	for i := len(head) - 1; i >= 0; i-- {
		roots = append(roots, head[i])
	}
	if hasZero {
		roots = append(roots, 0)
	}
	return append(roots, tail...), nil
}

// IntegerRoots validates coeffs and returns the polynomial's integer roots.
func IntegerRoots(coeffs []int64) ([]int64, error) {
	p, err := New(coeffs...)
	if err != nil {
		return nil, err
	}
	return p.IntegerRoots(), nil
}
