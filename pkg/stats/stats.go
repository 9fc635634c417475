// Package stats computes averages of integer samples.
//
// Mean, Median and Mode wrap github.com/montanaflynn/stats. Empty input fails
// with the NO_DATA code from package errors instead of returning a zero that
// could be mistaken for a real average.
package stats

import (
	"slices"

	mstats "github.com/montanaflynn/stats"

	"github.com/polyroots/polyroots/pkg/errors"
)

// Summary holds all three averages of a sample.
type Summary struct {
	Count  int       `json:"count"`
	Mean   float64   `json:"mean"`
	Median float64   `json:"median"`
	Modes  []float64 `json:"modes"`
}

func toData(vals []int64) mstats.Float64Data {
	data := make(mstats.Float64Data, len(vals))
	for i, v := range vals {
		data[i] = float64(v)
	}
	return data
}

func noData() error {
	return errors.New(errors.ErrCodeNoData, "no integers given")
}

// Mean returns the arithmetic mean of vals.
func Mean(vals []int64) (float64, error) {
	if len(vals) == 0 {
		return 0, noData()
	}
	return mstats.Mean(toData(vals))
}

// Median returns the middle value of vals once sorted, or the average of the
// two middle values for an even count. vals is not modified.
func Median(vals []int64) (float64, error) {
	if len(vals) == 0 {
		return 0, noData()
	}
	return mstats.Median(toData(vals))
}

// LowerMedian returns the middle value of vals once sorted, taking the lower
// of the two middle values for an even count. The result is always a member
// of vals. vals is not modified.
func LowerMedian(vals []int64) (int64, error) {
	if len(vals) == 0 {
		return 0, noData()
	}
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	return sorted[(len(sorted)+1)/2-1], nil
}

// Mode returns every value that occurs the maximum number of times, ascending.
// When no value repeats, every value is a mode.
func Mode(vals []int64) ([]float64, error) {
	if len(vals) == 0 {
		return nil, noData()
	}
	data := toData(vals)
	modes, err := mstats.Mode(data)
	if err != nil {
		return nil, err
	}
	if len(modes) > 0 {
		return modes, nil
	}

	// montanaflynn/stats reports no mode for all-distinct input.
	all := slices.Clone([]float64(data))
	slices.Sort(all)
	return slices.Compact(all), nil
}

// Summarize computes Mean, Median and Mode together.
func Summarize(vals []int64) (Summary, error) {
	mean, err := Mean(vals)
	if err != nil {
		return Summary{}, err
	}
	median, err := Median(vals)
	if err != nil {
		return Summary{}, err
	}
	modes, err := Mode(vals)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Count: len(vals), Mean: mean, Median: median, Modes: modes}, nil
}
