package distribution

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/mathx"

	"github.com/mason-leap-lab/distributions/chart"
	"github.com/mason-leap-lab/distributions/common/logger"
	"github.com/mason-leap-lab/distributions/common/stats"
)

const (
	DefaultP = 0.5
	DefaultN = 20

	PDFXLabel = "Number of instances"
	PDFYLabel = "Probability Density Function"
)

// Binomial Binomial distribution of N trials with success probability P.
//
// Mean and Stdev are recomputed by every operation that changes P or N:
//
//	mean = n * p
//	stdev = sqrt(n * p * (1 - p))
//
// The sample, if loaded, is a sequence of 0/1 trial outcomes.
type Binomial struct {
	Distribution

	P float64
	N int
}

// NewBinomial creates a binomial distribution of n trials with success probability p.
func NewBinomial(p float64, n int) (*Binomial, error) {
	if err := validate(p, n); err != nil {
		return nil, err
	}

	b := &Binomial{P: p, N: n}
	b.CalculateMean()
	if _, err := b.CalculateStdev(); err != nil {
		return nil, err
	}
	return b, nil
}

// DefaultBinomial creates a binomial distribution of 20 fair trials.
func DefaultBinomial() *Binomial {
	b, _ := NewBinomial(DefaultP, DefaultN)
	return b
}

func validate(p float64, n int) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return &ParameterError{Name: "p", Value: p}
	} else if n < 0 {
		return &ParameterError{Name: "n", Value: n}
	}
	return nil
}

// CalculateMean stores and returns n * p.
func (b *Binomial) CalculateMean() float64 {
	b.Mean = float64(b.N) * b.P
	return b.Mean
}

// CalculateStdev stores and returns sqrt(n * p * (1 - p)).
func (b *Binomial) CalculateStdev() (float64, error) {
	radicand := float64(b.N) * b.P * (1 - b.P)
	if !(radicand >= 0) {
		return 0, &ParameterError{Name: "n * p * (1 - p)", Value: radicand}
	}
	b.Stdev = math.Sqrt(radicand)
	return b.Stdev, nil
}

// ReplaceStatsWithData estimates n and p from the sample of 0/1 outcomes and recomputes
// the mean and the standard deviation. Prior parameters are discarded.
func (b *Binomial) ReplaceStatsWithData() (float64, int, error) {
	summary, err := stats.Summarize(b.Sample)
	if err == stats.ErrNoValues {
		return 0, 0, ErrEmptySample
	}
	for i, v := range b.Sample {
		if v != 0 && v != 1 {
			err := &SampleError{Index: i, Value: v}
			log.Warn("%v", logger.NewFormatFunc("Rejected sample of %d outcomes: %v", len(b.Sample), err))
			return 0, 0, err
		}
	}

	n := summary.N
	p := summary.Sum / float64(n)
	if err := validate(p, n); err != nil {
		return 0, 0, err
	}

	b.N = n
	b.P = p
	b.CalculateMean()
	if _, err := b.CalculateStdev(); err != nil {
		return 0, 0, err
	}
	log.Debug("Estimated from %d outcomes: %v", summary.N, logger.NewFunc(b.String))

	return b.P, b.N, nil
}

// PMF returns the probability of exactly k successes: C(n, k) * p^k * (1 - p)^(n - k).
// The coefficient is evaluated in log space, which keeps the result finite for n up
// to the range of int. Relative error grows with n, about 1e-9 at n = 1e7.
func (b *Binomial) PMF(k int) (float64, error) {
	if k < 0 || k > b.N {
		return 0, &DomainError{K: k, N: b.N}
	} else if err := validate(b.P, b.N); err != nil {
		return 0, err
	}

	switch b.P {
	case 0:
		if k == 0 {
			return 1, nil
		}
		return 0, nil
	case 1:
		if k == b.N {
			return 1, nil
		}
		return 0, nil
	}

	lpmf := mathx.Lchoose(b.N, k) + float64(k)*math.Log(b.P) + float64(b.N-k)*math.Log1p(-b.P)
	return math.Exp(lpmf), nil
}

// PlotSeries returns the series of the mass function for k in [0, n).
// k = n itself is not part of the series.
func (b *Binomial) PlotSeries() ([]int, []float64, error) {
	if err := validate(b.P, b.N); err != nil {
		return nil, nil, err
	}

	x := make([]int, b.N)
	y := make([]float64, b.N)
	for k := 0; k < b.N; k++ {
		pmf, err := b.PMF(k)
		if err != nil {
			return nil, nil, err
		}
		x[k] = k
		y[k] = pmf
	}
	return x, y, nil
}

// PlotBarPDF renders the bar chart of PlotSeries and returns the series.
func (b *Binomial) PlotBarPDF(r chart.Renderer) ([]int, []float64, error) {
	x, y, err := b.PlotSeries()
	if err != nil {
		return nil, nil, err
	}
	if err := r.RenderBar(x, y, PDFXLabel, PDFYLabel); err != nil {
		return x, y, err
	}
	return x, y, nil
}

// Combine adds two binomial distributions of the same p. The result has n = a.n + b.n.
// Neither operand is modified.
func Combine(a *Binomial, b *Binomial) (*Binomial, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrIncompatibleOperand)
	} else if a.P != b.P {
		return nil, &OperandError{P: a.P, OtherP: b.P}
	}

	result, err := NewBinomial(a.P, a.N+b.N)
	if err != nil {
		return nil, err
	}
	log.Debug("Combined: %v", logger.NewFunc(result.String))
	return result, nil
}

// Add is shorthand of Combine(b, other).
func (b *Binomial) Add(other *Binomial) (*Binomial, error) {
	return Combine(b, other)
}

func (b *Binomial) String() string {
	return fmt.Sprintf("mean %v, standard deviation %v, p %v, n %v", b.Mean, b.Stdev, b.P, b.N)
}
