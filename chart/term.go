package chart

import (
	"fmt"

	"github.com/dustin/go-humanize"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

const DefaultBins = 10

// TermRenderer Renders charts in the terminal until a key is pressed.
type TermRenderer struct {
	Bins     int
	BarWidth int

	// display shows the chart, replaced in tests.
	display func(ui.Drawable) error
}

func NewTermRenderer() *TermRenderer {
	return &TermRenderer{
		Bins:     DefaultBins,
		BarWidth: 5,
	}
}

func (r *TermRenderer) RenderHistogram(values []float64, title string, xLabel string, yLabel string) error {
	chart, err := r.HistogramChart(values, title, xLabel, yLabel)
	if err != nil {
		return err
	}
	return r.show(chart)
}

func (r *TermRenderer) RenderBar(x []int, y []float64, xLabel string, yLabel string) error {
	chart, err := r.BarChart(x, y, xLabel, yLabel)
	if err != nil {
		return err
	}
	return r.show(chart)
}

// HistogramChart builds the bar chart widget of a histogram of values.
func (r *TermRenderer) HistogramChart(values []float64, title string, xLabel string, yLabel string) (*widgets.BarChart, error) {
	bins := r.Bins
	if bins <= 0 {
		bins = DefaultBins
	}
	hist, err := Histogram(values, bins)
	if err != nil {
		return nil, err
	}

	chart := r.newChart(fmt.Sprintf(" %s (%s / %s) ", title, xLabel, yLabel))
	chart.Data = make([]float64, len(hist))
	chart.Labels = make([]string, len(hist))
	for i, bin := range hist {
		chart.Data[i] = float64(bin.Count)
		chart.Labels[i] = humanize.Ftoa(bin.From)
	}
	chart.NumFormatter = func(v float64) string {
		return humanize.Comma(int64(v))
	}
	return chart, nil
}

// BarChart builds the bar chart widget of y over x.
func (r *TermRenderer) BarChart(x []int, y []float64, xLabel string, yLabel string) (*widgets.BarChart, error) {
	if len(x) != len(y) {
		return nil, ErrUnalignedSeries
	} else if len(x) == 0 {
		return nil, ErrEmptySeries
	}

	chart := r.newChart(fmt.Sprintf(" %s / %s ", xLabel, yLabel))
	chart.Data = make([]float64, len(y))
	copy(chart.Data, y)
	chart.Labels = make([]string, len(x))
	for i, k := range x {
		chart.Labels[i] = humanize.Comma(int64(k))
	}
	chart.NumFormatter = func(v float64) string {
		return humanize.FormatFloat("#,###.###", v)
	}
	return chart, nil
}

func (r *TermRenderer) newChart(title string) *widgets.BarChart {
	chart := widgets.NewBarChart()
	chart.Title = title
	chart.BarWidth = r.BarWidth
	chart.BarColors = []ui.Color{ui.ColorBlue}
	chart.LabelStyles = []ui.Style{ui.NewStyle(ui.ColorWhite)}
	chart.NumStyles = []ui.Style{ui.NewStyle(ui.ColorYellow)}
	return chart
}

func (r *TermRenderer) show(chart ui.Drawable) error {
	if r.display != nil {
		return r.display(chart)
	}

	if err := ui.Init(); err != nil {
		return err
	}
	defer ui.Close()

	termWidth, termHeight := ui.TerminalDimensions()
	chart.SetRect(0, 0, termWidth, termHeight)
	ui.Render(chart)
	log.Debug("Chart rendered, press any key to continue")

	for e := range ui.PollEvents() {
		switch e.Type {
		case ui.KeyboardEvent:
			return nil
		case ui.ResizeEvent:
			payload := e.Payload.(ui.Resize)
			chart.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
			ui.Render(chart)
		}
	}
	return nil
}
