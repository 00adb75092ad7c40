package options

import (
	"fmt"

	"github.com/mason-leap-lab/go-utils/config"

	"github.com/mason-leap-lab/distributions/loader"
)

const (
	PlotNone      = "none"
	PlotBar       = "bar"
	PlotHistogram = "hist"
)

// Options Options definition
type Options struct {
	config.LoggerOptions

	P        float64 `name:"p" description:"Success probability of each trial."`
	N        int     `name:"n" description:"Number of trials."`
	Data     string  `name:"data" description:"File or s3://bucket/key of 0/1 outcomes to estimate p and n from."`
	Loader   string  `name:"loader" description:"Loader of data: line, csv."`
	Column   int     `name:"column" description:"Column of outcomes for the csv loader."`
	CombineN int     `name:"combine-n" description:"Combine with another distribution of the same p and specified number of trials."`
	Plot     string  `name:"plot" description:"Chart to render: none, bar, hist."`
	Bins     int     `name:"bins" description:"Number of bins of the histogram."`
	S3Region string  `name:"s3-region" description:"AWS region of the s3 data source."`

	DataLoader loader.Loader
}

// Validate validates options
func (opts *Options) Validate() error {
	if opts.Data == "" && (opts.P < 0 || opts.P > 1) {
		return fmt.Errorf("invalid p %v, want 0 <= p <= 1", opts.P)
	} else if opts.Data == "" && opts.N < 0 {
		return fmt.Errorf("invalid n %d, want n >= 0", opts.N)
	} else if opts.CombineN < 0 {
		return fmt.Errorf("invalid combine-n %d, want combine-n >= 0", opts.CombineN)
	}

	switch opts.Plot {
	case PlotNone, PlotBar, PlotHistogram:
	default:
		return fmt.Errorf("unsupported plot: %s", opts.Plot)
	}

	switch opts.Loader {
	case "csv":
		opts.DataLoader = &loader.CsvLoader{Column: opts.Column}
	default:
		l, ok := loader.Get(opts.Loader)
		if !ok {
			return fmt.Errorf("unsupported loader: %s", opts.Loader)
		}
		opts.DataLoader = l
	}
	return nil
}
