// Command binomial describes and plots a binomial distribution built from parameters or
// estimated from a file of 0/1 trial outcomes.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mason-leap-lab/go-utils/config"
	"github.com/mgutz/ansi"

	"github.com/mason-leap-lab/distributions/chart"
	"github.com/mason-leap-lab/distributions/cmd/binomial/options"
	"github.com/mason-leap-lab/distributions/common/logger"
	"github.com/mason-leap-lab/distributions/common/stats"
	"github.com/mason-leap-lab/distributions/distribution"
	"github.com/mason-leap-lab/distributions/loader"
)

var (
	log logger.ILogger = logger.NilLogger

	title = ansi.ColorFunc("green+b")
	label = ansi.ColorFunc("cyan")
)

func main() {
	opts := &options.Options{
		P:        distribution.DefaultP,
		N:        distribution.DefaultN,
		Loader:   "line",
		Plot:     options.PlotNone,
		Bins:     chart.DefaultBins,
		S3Region: "us-east-1",
	}
	flags, err := config.ValidateOptions(opts)
	if err == config.ErrPrintUsage {
		fmt.Fprintf(os.Stderr, "Usage: ./binomial [options]\n")
		fmt.Fprintf(os.Stderr, "Available options:\n")
		flags.PrintDefaults()
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log = config.GetDefaultLogger()
	distribution.SetLogger(log)
	loader.SetLogger(log)
	chart.SetLogger(log)
	loader.DefaultS3Source.Region = opts.S3Region

	var renderer chart.Renderer = &chart.NilRenderer{}
	if opts.Plot != options.PlotNone {
		term := chart.NewTermRenderer()
		term.Bins = opts.Bins
		renderer = term
	}

	if err := run(opts, os.Stdout, renderer); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func run(opts *options.Options, out io.Writer, renderer chart.Renderer) error {
	dist, err := build(opts)
	if err != nil {
		return err
	}
	describe(out, "Binomial", dist)
	if len(dist.Sample) > 0 {
		summarize(out, dist.Sample)
	}

	if opts.CombineN > 0 {
		other, err := distribution.NewBinomial(dist.P, opts.CombineN)
		if err != nil {
			return err
		}
		combined, err := dist.Add(other)
		if err != nil {
			return err
		}
		describe(out, "Combined", combined)
		dist = combined
	}

	switch opts.Plot {
	case options.PlotBar:
		_, _, err = dist.PlotBarPDF(renderer)
	case options.PlotHistogram:
		err = dist.PlotHistogram(renderer)
	}
	return err
}

func build(opts *options.Options) (*distribution.Binomial, error) {
	if opts.Data == "" {
		return distribution.NewBinomial(opts.P, opts.N)
	}

	dist := distribution.DefaultBinomial()
	if err := dist.LoadSample(opts.DataLoader, opts.Data); err != nil {
		return nil, err
	}
	if _, _, err := dist.ReplaceStatsWithData(); err != nil {
		return nil, err
	}
	return dist, nil
}

func describe(out io.Writer, name string, model distribution.Model) {
	fmt.Fprintf(out, "%s: %s\n", title(name), model.String())
}

func summarize(out io.Writer, sample []float64) {
	summary, err := stats.Summarize(sample)
	if err != nil {
		return
	}
	fmt.Fprintf(out, "%s %s trials, %s successes, sample stdev %s\n",
		label("Sample:"),
		humanize.Comma(int64(summary.N)),
		humanize.Comma(int64(summary.Sum)),
		humanize.FormatFloat("#,###.####", summary.Stdev))
}
