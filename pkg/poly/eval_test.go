package poly

import (
	"math"
	"math/big"
	"testing"

	"github.com/polyroots/polyroots/pkg/errors"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		coeffs []int64
		x      int64
		want   int64
	}{
		{nil, 1, 0},
		{[]int64{1}, 2, 1},
		{[]int64{1, 2}, 3, 5},
		{[]int64{1, 2, 1}, 4, 25},
		{[]int64{1, -5, 6}, 2, 0},
		{[]int64{1, -5, 6}, 4, 2},
		{[]int64{1, 0, 0, 0}, -2, -8},
		{[]int64{3, 0}, 0, 0},
		{[]int64{7}, 0, 7},
		{[]int64{1, -3, -75, 475, -750}, -10, 0},
	}

	for _, tt := range tests {
		got, err := Evaluate(tt.coeffs, tt.x)
		if err != nil {
			t.Fatalf("Evaluate(%v, %d) error: %v", tt.coeffs, tt.x, err)
		}
		if got != tt.want {
			t.Errorf("Evaluate(%v, %d) = %d, want %d", tt.coeffs, tt.x, got, tt.want)
		}
	}
}

func TestEvaluateInvalid(t *testing.T) {
	for _, coeffs := range [][]int64{{0}, {0, 1, 2}, {1, math.MinInt64}} {
		if _, err := Evaluate(coeffs, 1); !errors.Is(err, errors.ErrCodeInvalidPolynomial) {
			t.Errorf("Evaluate(%v, 1) error = %v, want INVALID_POLYNOMIAL", coeffs, err)
		}
		if _, err := IsRoot(coeffs, 1); !errors.Is(err, errors.ErrCodeInvalidPolynomial) {
			t.Errorf("IsRoot(%v, 1) error = %v, want INVALID_POLYNOMIAL", coeffs, err)
		}
	}
}

func TestEvaluateOverflow(t *testing.T) {
	p := MustNew(1, 0, 0)
	_, err := p.Evaluate(math.MaxInt64)
	if !errors.Is(err, errors.ErrCodeOverflow) {
		t.Fatalf("Evaluate(MaxInt64) error = %v, want OVERFLOW", err)
	}

	want := new(big.Int).Mul(big.NewInt(math.MaxInt64), big.NewInt(math.MaxInt64))
	if got := p.Value(math.MaxInt64); got.Cmp(want) != 0 {
		t.Errorf("Value(MaxInt64) = %s, want %s", got, want)
	}
}

func TestValueMatchesPowerSum(t *testing.T) {
	coeffs := []int64{3, -2, 0, 5, -7}
	p := MustNew(coeffs...)

	for x := int64(-6); x <= 6; x++ {
		var want int64
		for i, c := range coeffs {
			term := c
			for k := 0; k < len(coeffs)-i-1; k++ {
				term *= x
			}
			want += term
		}
		if got := p.Value(x); !got.IsInt64() || got.Int64() != want {
			t.Errorf("Value(%d) = %s, want %d", x, got, want)
		}
	}
}

func TestValueHighDegree(t *testing.T) {
	coeffs := make([]int64, 20001)
	for i := range coeffs {
		coeffs[i] = 1
	}
	p := MustNew(coeffs...)

	// x^20000 + x^19999 + ... + 1 alternates to 1 at x = -1.
	if got := p.Value(-1); got.Int64() != 1 {
		t.Errorf("Value(-1) = %s, want 1", got)
	}
	if got := p.Value(1); got.Int64() != 20001 {
		t.Errorf("Value(1) = %s, want 20001", got)
	}
}

func TestIsRoot(t *testing.T) {
	tests := []struct {
		coeffs []int64
		x      int64
		want   bool
	}{
		{nil, 1, true},
		{[]int64{1}, 1, false},
		{[]int64{1, 1}, 1, false},
		{[]int64{1, 1}, -1, true},
		{[]int64{1, -1}, 1, true},
		{[]int64{1, -1}, -1, false},
		{[]int64{1, -5, 6}, 2, true},
		{[]int64{1, -5, 6}, 3, true},
		{[]int64{1, -5, 6}, 4, false},
	}

	for _, tt := range tests {
		got, err := IsRoot(tt.coeffs, tt.x)
		if err != nil {
			t.Fatalf("IsRoot(%v, %d) error: %v", tt.coeffs, tt.x, err)
		}
		if got != tt.want {
			t.Errorf("IsRoot(%v, %d) = %v, want %v", tt.coeffs, tt.x, got, tt.want)
		}
	}
}

func TestIsRootAgreesWithValue(t *testing.T) {
	p := MustNew(1, -3, -75, 475, -750)
	for x := int64(-20); x <= 20; x++ {
		if got, want := p.IsRoot(x), p.Value(x).Sign() == 0; got != want {
			t.Errorf("IsRoot(%d) = %v, want %v", x, got, want)
		}
	}
}

func TestIsRootExactBeyondInt64(t *testing.T) {
	// x^2 - 1 at MaxInt64 wraps to 0 in int64 arithmetic; the exact value does not.
	p := MustNew(1, 0, -1)
	if p.IsRoot(math.MaxInt64) {
		t.Error("IsRoot(MaxInt64) = true, want false")
	}
}
