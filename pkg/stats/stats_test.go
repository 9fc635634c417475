package stats

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/polyroots/polyroots/pkg/errors"
)

func TestMean(t *testing.T) {
	tests := []struct {
		vals []int64
		want float64
	}{
		{[]int64{5}, 5},
		{[]int64{1, 2, 3, 4}, 2.5},
		{[]int64{-3, 3}, 0},
		{[]int64{2, 4, 4, 4, 5, 5, 7, 9}, 5},
	}

	for _, tt := range tests {
		got, err := Mean(tt.vals)
		if err != nil {
			t.Fatalf("Mean(%v) error: %v", tt.vals, err)
		}
		if got != tt.want {
			t.Errorf("Mean(%v) = %v, want %v", tt.vals, got, tt.want)
		}
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		vals []int64
		want float64
	}{
		{[]int64{7}, 7},
		{[]int64{3, 1, 2}, 2},
		{[]int64{4, 1, 3, 2}, 2.5},
		{[]int64{-5, 10, 0}, 0},
	}

	for _, tt := range tests {
		in := append([]int64(nil), tt.vals...)
		got, err := Median(in)
		if err != nil {
			t.Fatalf("Median(%v) error: %v", tt.vals, err)
		}
		if got != tt.want {
			t.Errorf("Median(%v) = %v, want %v", tt.vals, got, tt.want)
		}
		if diff := cmp.Diff(tt.vals, in); diff != "" {
			t.Errorf("Median modified its input (-want +got):\n%s", diff)
		}
	}
}

func TestLowerMedian(t *testing.T) {
	tests := []struct {
		vals []int64
		want int64
	}{
		{[]int64{7}, 7},
		{[]int64{3, 1, 2}, 2},
		{[]int64{4, 1, 3, 2}, 2},
		{[]int64{10, -5}, -5},
		{[]int64{6, 6, 1, 9, 2, 8}, 6},
	}

	for _, tt := range tests {
		in := append([]int64(nil), tt.vals...)
		got, err := LowerMedian(in)
		if err != nil {
			t.Fatalf("LowerMedian(%v) error: %v", tt.vals, err)
		}
		if got != tt.want {
			t.Errorf("LowerMedian(%v) = %d, want %d", tt.vals, got, tt.want)
		}
		if diff := cmp.Diff(tt.vals, in); diff != "" {
			t.Errorf("LowerMedian modified its input (-want +got):\n%s", diff)
		}
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		name string
		vals []int64
		want []float64
	}{
		{"single", []int64{4}, []float64{4}},
		{"one mode", []int64{1, 2, 2, 3}, []float64{2}},
		{"two modes", []int64{3, 1, 3, 1, 2}, []float64{1, 3}},
		{"all distinct", []int64{3, 1, 2}, []float64{1, 2, 3}},
		{"all equally frequent", []int64{2, 1, 1, 2}, []float64{1, 2}},
		{"all equal", []int64{6, 6, 6}, []float64{6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mode(tt.vals)
			if err != nil {
				t.Fatalf("Mode(%v) error: %v", tt.vals, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Mode(%v) mismatch (-want +got):\n%s", tt.vals, diff)
			}
		})
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := Mean(nil); !errors.Is(err, errors.ErrCodeNoData) {
		t.Errorf("Mean(nil) error = %v, want NO_DATA", err)
	}
	if _, err := Median(nil); !errors.Is(err, errors.ErrCodeNoData) {
		t.Errorf("Median(nil) error = %v, want NO_DATA", err)
	}
	if _, err := LowerMedian(nil); !errors.Is(err, errors.ErrCodeNoData) {
		t.Errorf("LowerMedian(nil) error = %v, want NO_DATA", err)
	}
	if _, err := Mode(nil); !errors.Is(err, errors.ErrCodeNoData) {
		t.Errorf("Mode(nil) error = %v, want NO_DATA", err)
	}
	if _, err := Summarize(nil); !errors.Is(err, errors.ErrCodeNoData) {
		t.Errorf("Summarize(nil) error = %v, want NO_DATA", err)
	}
}

func TestSummarize(t *testing.T) {
	got, err := Summarize([]int64{1, 2, 2, 7})
	if err != nil {
		t.Fatal(err)
	}
	want := Summary{Count: 4, Mean: 3, Median: 2, Modes: []float64{2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestReadInts(t *testing.T) {
	in := "1 2 3\n\n  -4\t5\n6"
	got, err := ReadInts(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadInts error: %v", err)
	}
	if diff := cmp.Diff([]int64{1, 2, 3, -4, 5, 6}, got); diff != "" {
		t.Errorf("ReadInts mismatch (-want +got):\n%s", diff)
	}

	empty, err := ReadInts(strings.NewReader("\n\n"))
	if err != nil || len(empty) != 0 {
		t.Errorf("ReadInts(blank) = %v, %v; want no values", empty, err)
	}

	_, err = ReadInts(strings.NewReader("1 2\n3 x\n"))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("ReadInts(bad token) error = %v, want INVALID_INPUT", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the line: %v", err)
	}
}

func TestParseInts(t *testing.T) {
	got, err := ParseInts([]string{"3", "-1", "+2"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int64{3, -1, 2}, got); diff != "" {
		t.Errorf("ParseInts mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseInts([]string{"1", "2.5"}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseInts(2.5) error = %v, want INVALID_INPUT", err)
	}
}
