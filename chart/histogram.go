package chart

import (
	"math"

	"github.com/mason-leap-lab/distributions/common/stats"
)

// Bin One bucket of a histogram, covering [From, To).
type Bin struct {
	From  float64
	To    float64
	Count int
}

// Histogram counts values into bins of equal width. The last bin includes the maximum.
// Values must be finite.
func Histogram(values []float64, bins int) ([]Bin, error) {
	if bins <= 0 {
		return nil, ErrInvalidBinNumber
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFiniteValue
		}
	}
	summary, err := stats.Summarize(values)
	if err != nil {
		return nil, ErrEmptySeries
	}

	min, max := summary.Min, summary.Max
	if max == min {
		// All values fall into one bin.
		max = min + 1
	}
	// Work on half values: max - min overflows for ranges wider than math.MaxFloat64.
	halfSpan := max/2 - min/2
	halfWidth := halfSpan / float64(bins)

	result := make([]Bin, bins)
	for i := range result {
		result[i].From = min + halfWidth*float64(i) + halfWidth*float64(i)
		result[i].To = min + halfWidth*float64(i+1) + halfWidth*float64(i+1)
	}
	result[bins-1].To = max

	for _, v := range values {
		pos := (v/2 - min/2) / halfWidth
		idx := bins - 1
		if !(pos >= 0) {
			idx = 0
		} else if pos < float64(bins-1) {
			idx = int(pos)
		}
		result[idx].Count++
	}
	return result, nil
}
