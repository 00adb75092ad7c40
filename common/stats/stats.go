package stats

import (
	"errors"
	"math"

	"github.com/aclements/go-moremath/stats"
)

var (
	ErrNoValues = errors.New("no values")
)

// SampleProvider exposes the observed values of a distribution.
type SampleProvider interface {
	Len() int
	Values() []float64
}

// MomentProvider exposes the summary statistics of a distribution.
type MomentProvider interface {
	Expectation() float64
	StandardDeviation() float64
}

// Summary Descriptive statistics of a sample.
type Summary struct {
	N     int
	Sum   float64
	Mean  float64
	Stdev float64 // Sample standard deviation, n-1 denominator.
	Min   float64
	Max   float64
}

// Summarize computes descriptive statistics of xs.
func Summarize(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrNoValues
	}

	samp := stats.Sample{Xs: xs}
	summary := Summary{
		N:    len(xs),
		Sum:  samp.Sum(),
		Mean: samp.Mean(),
	}
	if len(xs) > 1 {
		summary.Stdev = samp.StdDev()
	}
	summary.Min, summary.Max = samp.Bounds()
	return summary, nil
}

// Mean returns the arithmetic mean of the values a provider holds.
func Mean(provider SampleProvider) (float64, error) {
	if provider.Len() == 0 {
		return math.NaN(), ErrNoValues
	}
	return stats.Mean(provider.Values()), nil
}

// StdDev returns the sample standard deviation of the values a provider holds.
func StdDev(provider SampleProvider) (float64, error) {
	switch provider.Len() {
	case 0:
		return math.NaN(), ErrNoValues
	case 1:
		return 0, nil
	}
	return stats.StdDev(provider.Values()), nil
}
