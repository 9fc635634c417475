package poly

import (
	"context"
	"slices"
)

// checkEvery is how many trial divisions run between context checks.
const checkEvery = 1 << 12

// Divisors returns every integer d with x % d == 0 and the same sign as x,
// ordered by ascending absolute value. Divisors(0) is [0].
//
//	Divisors(6)  = [1 2 3 6]
//	Divisors(-6) = [-1 -2 -3 -6]
func Divisors(x int64) []int64 {
	divs, _ := DivisorsContext(context.Background(), x)
	return divs
}

// DivisorsContext is like Divisors but stops with ctx.Err() once ctx is done.
// Trial division runs up to sqrt(|x|), which for x near math.MaxInt64 is
// about three billion steps.
func DivisorsContext(ctx context.Context, x int64) ([]int64, error) {
	if x == 0 {
		return []int64{0}, nil
	}

	// Work on the magnitude as uint64 so math.MinInt64 is handled too.
	n := uint64(x)
	if x < 0 {
		n = uint64(-(x + 1)) + 1
	}

	var small, large []uint64
	for i := uint64(1); i <= n/i; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i {
			large = append(large, j)
		}
	}
	slices.Reverse(large)

	divs := make([]int64, 0, len(small)+len(large))
	for _, d := range append(small, large...) {
		if x < 0 {
			divs = append(divs, -int64(d))
		} else {
			divs = append(divs, int64(d))
		}
	}
	return divs, nil
}
