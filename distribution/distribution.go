// Package distribution models probability distributions for summary statistics and visualization.
package distribution

import (
	"github.com/mason-leap-lab/distributions/chart"
	"github.com/mason-leap-lab/distributions/common/logger"
	"github.com/mason-leap-lab/distributions/common/stats"
	"github.com/mason-leap-lab/distributions/loader"
)

var (
	log = logger.NilLogger
)

// SetLogger installs the logger used by distributions.
func SetLogger(l logger.ILogger) {
	if l == nil {
		l = logger.NilLogger
	}
	log = l
}

// Model Capabilities shared by all distributions.
type Model interface {
	stats.MomentProvider

	// Base returns the generic part of the distribution.
	Base() *Distribution

	CalculateMean() float64
	CalculateStdev() (float64, error)

	// PMF evaluates the probability mass function at k.
	PMF(k int) (float64, error)

	String() string
}

// Distribution The generic part of a distribution: a sample plus the mean and standard deviation.
// Mean and Stdev are not kept in sync with Sample; specializations do that.
type Distribution struct {
	Sample []float64
	Mean   float64
	Stdev  float64
}

func NewDistribution(mean float64, stdev float64) *Distribution {
	return &Distribution{
		Mean:  mean,
		Stdev: stdev,
	}
}

func (d *Distribution) Base() *Distribution {
	return d
}

// LoadSample replaces the sample with the values l reads from source.
// The sample is left untouched on failure.
func (d *Distribution) LoadSample(l loader.Loader, source string) error {
	values, err := loader.LoadFile(l, source)
	if err != nil {
		return err
	}
	d.Sample = values
	return nil
}

// SetSample replaces the sample with a copy of values.
func (d *Distribution) SetSample(values []float64) {
	d.Sample = make([]float64, len(values))
	copy(d.Sample, values)
}

// Len implements stats.SampleProvider.
func (d *Distribution) Len() int {
	return len(d.Sample)
}

// Values implements stats.SampleProvider.
func (d *Distribution) Values() []float64 {
	return d.Sample
}

// Expectation implements stats.MomentProvider.
func (d *Distribution) Expectation() float64 {
	return d.Mean
}

// StandardDeviation implements stats.MomentProvider.
func (d *Distribution) StandardDeviation() float64 {
	return d.Stdev
}

// SampleMean returns the mean of the sample without touching Mean.
func (d *Distribution) SampleMean() (float64, error) {
	mean, err := stats.Mean(d)
	if err == stats.ErrNoValues {
		return mean, ErrEmptySample
	}
	return mean, err
}

// SampleStdev returns the sample standard deviation without touching Stdev.
func (d *Distribution) SampleStdev() (float64, error) {
	stdev, err := stats.StdDev(d)
	if err == stats.ErrNoValues {
		return stdev, ErrEmptySample
	}
	return stdev, err
}

// PlotHistogram renders the histogram of the sample.
func (d *Distribution) PlotHistogram(r chart.Renderer) error {
	if len(d.Sample) == 0 {
		return ErrEmptySample
	}
	return r.RenderHistogram(d.Sample, "Histogram of data", "value", "count")
}
