// Package gochart is the go-chart backed plot.Figure.
package gochart

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/InDegreePlot/src/logging"
	"github.com/iafilius/InDegreePlot/src/plot"
)

// DefaultWidth is the raw chart width before clamping.
const DefaultWidth = 1100

// palette follows the usual tab10 order so the four datasets keep familiar colors.
var palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
}

// lineStyle returns a plain line style for series i (no dots).
func lineStyle(i int) chart.Style {
	return chart.Style{
		StrokeColor: palette[i%len(palette)],
		StrokeWidth: 1.5,
	}
}

// Figure accumulates series and renders them as one go-chart line chart.
type Figure struct {
	plot.State

	width   int
	height  int
	display plot.Displayer
	shown   int
}

var _ plot.Figure = (*Figure)(nil)

// Option configures a Figure.
type Option func(*Figure)

// WithDisplay sets where Show sends the rendered image.
func WithDisplay(d plot.Displayer) Option { return func(f *Figure) { f.display = d } }

// WithWidth sets the raw chart width; height follows plot.ComputeChartDimensions.
func WithWidth(w int) Option {
	return func(f *Figure) { f.width, f.height = plot.ComputeChartDimensions(w) }
}

// New returns an empty figure.
func New(opts ...Option) *Figure {
	f := &Figure{}
	f.width, f.height = plot.ComputeChartDimensions(DefaultWidth)
	for _, o := range opts {
		o(f)
	}
	return f
}

// Size returns the rendered image size in pixels.
func (f *Figure) Size() (int, int) { return f.width, f.height }

// Shown counts images handed to the Displayer.
func (f *Figure) Shown() int { return f.shown }

// Show renders the figure and hands it to the Displayer.
func (f *Figure) Show() error {
	if f.display == nil {
		return plot.ErrNoDisplay
	}
	img, err := f.Image()
	if err != nil {
		return err
	}
	f.shown++
	return f.display.Display(img, f.Title)
}

// Image renders the figure to an image.
func (f *Figure) Image() (image.Image, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "decode rendered chart")
	}
	return img, nil
}

// Render writes the figure to w as PNG. A figure with nothing drawable renders the
// "no data" placeholder.
func (f *Figure) Render(w io.Writer) error {
	defer logging.TimeTrack(time.Now(), "gochart render")
	ch, ok := f.Chart()
	if !ok {
		logging.Debugf("gochart: nothing drawable in %d series; rendering placeholder", len(f.Series))
		return errors.Wrap(png.Encode(w, plot.NoData(f.width, f.height, f.Title)), "encode placeholder")
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return errors.Wrap(err, "render chart")
	}
	return nil
}

// Chart builds the go-chart model of the figure. ok is false when no series has a
// drawable point.
func (f *Figure) Chart() (chart.Chart, bool) {
	series := []chart.Series{}
	var ys [][]float64
	maxX := 0.0
	for i := range f.Series {
		xs, yv := f.points(i)
		if len(xs) == 0 {
			continue
		}
		maxX = math.Max(maxX, xs[len(xs)-1])
		ys = append(ys, yv)
		series = append(series, chart.ContinuousSeries{
			Name:    plot.LegendLabel(f.Legend, i),
			XValues: xs,
			YValues: yv,
			Style:   lineStyle(i),
		})
	}
	if len(series) == 0 {
		return chart.Chart{}, false
	}

	ch := chart.Chart{
		Title:      f.Title,
		Width:      f.width,
		Height:     f.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      f.xAxis(maxX),
		YAxis:      f.yAxis(ys),
		Series:     series,
	}
	legendChart := ch
	legendChart.Series = f.legendSeries()
	ch.Elements = []chart.Renderable{chart.Legend(&legendChart)}
	return ch, true
}

// legendSeries carries one legend entry per plotted series, including series with no
// drawable points. The values are never drawn; chart.Legend only reads names and styles.
func (f *Figure) legendSeries() []chart.Series {
	out := make([]chart.Series, len(f.Series))
	for i, name := range f.LegendEntries() {
		out[i] = chart.ContinuousSeries{Name: name, Style: lineStyle(i)}
	}
	return out
}

// DrawnLegend returns the entries the chart legend draws, in order.
func (f *Figure) DrawnLegend() []string {
	var out []string
	for _, s := range f.legendSeries() {
		out = append(out, s.GetName())
	}
	return out
}

// points returns the drawn points of series i. go-chart has no log axis, so on a log
// scale the values are plotted as log10 against decade ticks.
func (f *Figure) points(i int) ([]float64, []float64) {
	xs, ys := f.Drawable(i)
	if f.Scale != plot.Log {
		return xs, ys
	}
	logs := make([]float64, len(ys))
	for j, v := range ys {
		logs[j] = math.Log10(v)
	}
	return xs, logs
}

func (f *Figure) xAxis(maxX float64) chart.XAxis {
	if maxX < 1 {
		maxX = 1
	}
	ticks := []chart.Tick{}
	for _, v := range plot.IntegerTicks(maxX, 9) {
		ticks = append(ticks, chart.Tick{Value: v, Label: plot.FormatNumericTick(v)})
	}
	return chart.XAxis{
		Name:  f.XLabel,
		Range: &chart.ContinuousRange{Min: 0, Max: ticks[len(ticks)-1].Value},
		Ticks: ticks,
	}
}

// yAxis takes the drawn values: on a log axis those are already exponents.
func (f *Figure) yAxis(ys [][]float64) chart.YAxis {
	if f.Scale == plot.Log {
		lo, hi, _ := plot.DecadeBounds(f.AllY()...)
		ticks := []chart.Tick{}
		for k := lo; k <= hi; k++ {
			ticks = append(ticks, chart.Tick{Value: float64(k), Label: plot.FormatNumericTick(math.Pow(10, float64(k)))})
		}
		return chart.YAxis{
			Name:  f.YLabel,
			Range: &chart.ContinuousRange{Min: float64(lo), Max: float64(hi)},
			Ticks: ticks,
		}
	}
	maxY := 0.0
	for _, s := range ys {
		for _, v := range s {
			maxY = math.Max(maxY, v)
		}
	}
	ticks := []chart.Tick{}
	for _, v := range plot.BuildNumericTicks(0, plot.NiceMax(maxY), 6) {
		ticks = append(ticks, chart.Tick{Value: v, Label: plot.FormatNumericTick(v)})
	}
	return chart.YAxis{
		Name:  f.YLabel,
		Range: &chart.ContinuousRange{Min: 0, Max: ticks[len(ticks)-1].Value},
		Ticks: ticks,
	}
}
