package chart

import (
	"errors"

	"github.com/mason-leap-lab/distributions/common/logger"
)

var (
	ErrEmptySeries      = errors.New("empty series")
	ErrUnalignedSeries  = errors.New("x and y series have different lengths")
	ErrInvalidBinNumber = errors.New("number of bins must be positive")
	ErrNonFiniteValue   = errors.New("value is not finite")

	log = logger.NilLogger
)

// Renderer Draws charts of distribution data. Rendering is a side effect only.
type Renderer interface {
	// RenderHistogram draws a frequency histogram of raw values.
	RenderHistogram(values []float64, title string, xLabel string, yLabel string) error

	// RenderBar draws a bar chart of y over x.
	RenderBar(x []int, y []float64, xLabel string, yLabel string) error
}

// SetLogger installs the logger used by renderers.
func SetLogger(l logger.ILogger) {
	if l == nil {
		l = logger.NilLogger
	}
	log = l
}

// NilRenderer Renders nothing.
type NilRenderer struct {
}

// RenderHistogram implements Renderer.
func (r *NilRenderer) RenderHistogram(values []float64, title string, xLabel string, yLabel string) error {
	return nil
}

// RenderBar implements Renderer.
func (r *NilRenderer) RenderBar(x []int, y []float64, xLabel string, yLabel string) error {
	return nil
}
