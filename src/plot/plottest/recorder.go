// Package plottest provides a recording plot.Figure for tests.
package plottest

import (
	"fmt"

	"github.com/iafilius/InDegreePlot/src/plot"
)

// Recorder remembers every call made on it. The last value of each setter wins, the same
// as on a real figure.
type Recorder struct {
	Calls  []string
	Series []plot.Series
	Legend []string
	XLabel string
	YLabel string
	Scale  plot.Scale
	Title  string
	Shown  int

	// ShowErr is returned from Show when set.
	ShowErr error
}

var _ plot.Figure = (*Recorder)(nil)

func (r *Recorder) Plot(s plot.Series) {
	r.Calls = append(r.Calls, fmt.Sprintf("plot(%d)", s.Len()))
	r.Series = append(r.Series, s)
}

func (r *Recorder) SetLabels(x, y string) {
	r.Calls = append(r.Calls, fmt.Sprintf("labels(%s,%s)", x, y))
	r.XLabel, r.YLabel = x, y
}

func (r *Recorder) SetScale(s plot.Scale) {
	r.Calls = append(r.Calls, "scale("+s.String()+")")
	r.Scale = s
}

func (r *Recorder) SetLegend(labels []string) {
	r.Calls = append(r.Calls, fmt.Sprintf("legend(%d)", len(labels)))
	r.Legend = append([]string(nil), labels...)
}

func (r *Recorder) SetTitle(title string) {
	r.Calls = append(r.Calls, "title("+title+")")
	r.Title = title
}

func (r *Recorder) Show() error {
	r.Calls = append(r.Calls, "show")
	r.Shown++
	return r.ShowErr
}

// LegendEntries returns the legend as it would be drawn: one entry per plotted series.
func (r *Recorder) LegendEntries() []string {
	out := make([]string, len(r.Series))
	for i := range r.Series {
		out[i] = plot.LegendLabel(r.Legend, i)
	}
	return out
}
