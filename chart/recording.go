package chart

// Call A recorded renderer call.
type Call struct {
	Kind   string
	Title  string
	XLabel string
	YLabel string
	Values []float64
	X      []int
	Y      []float64
}

// RecordingRenderer Records calls instead of drawing. Used to check what callers render.
type RecordingRenderer struct {
	Calls []Call
}

// RenderHistogram records a histogram call.
func (r *RecordingRenderer) RenderHistogram(values []float64, title string, xLabel string, yLabel string) error {
	r.Calls = append(r.Calls, Call{Kind: "histogram", Title: title, XLabel: xLabel, YLabel: yLabel, Values: values})
	return nil
}

// RenderBar records a bar call. Unaligned series are rejected like TermRenderer does.
func (r *RecordingRenderer) RenderBar(x []int, y []float64, xLabel string, yLabel string) error {
	if len(x) != len(y) {
		return ErrUnalignedSeries
	}
	r.Calls = append(r.Calls, Call{Kind: "bar", XLabel: xLabel, YLabel: yLabel, X: x, Y: y})
	return nil
}
