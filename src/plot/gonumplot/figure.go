// Package gonumplot is the gonum/plot backed plot.Figure. Unlike go-chart it has a real
// logarithmic axis, so log charts keep their raw counts.
package gonumplot

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/iafilius/InDegreePlot/src/logging"
	"github.com/iafilius/InDegreePlot/src/plot"
)

// dpi used when converting pixel sizes to vg lengths.
const dpi = 96

// Figure accumulates series and renders them with gonum/plot.
type Figure struct {
	plot.State

	width   int
	height  int
	display plot.Displayer
	shown   int
	drawn   []string
}

var _ plot.Figure = (*Figure)(nil)

// Option configures a Figure.
type Option func(*Figure)

// WithDisplay sets where Show sends the rendered image.
func WithDisplay(d plot.Displayer) Option { return func(f *Figure) { f.display = d } }

// WithWidth sets the raw plot width; height follows plot.ComputeChartDimensions.
func WithWidth(w int) Option {
	return func(f *Figure) { f.width, f.height = plot.ComputeChartDimensions(w) }
}

// New returns an empty figure.
func New(opts ...Option) *Figure {
	f := &Figure{}
	f.width, f.height = plot.ComputeChartDimensions(1100)
	for _, o := range opts {
		o(f)
	}
	return f
}

// Size returns the rendered image size in pixels.
func (f *Figure) Size() (int, int) { return f.width, f.height }

// Shown counts images handed to the Displayer.
func (f *Figure) Shown() int { return f.shown }

// DrawnLegend returns the legend entries of the last Build, in order.
func (f *Figure) DrawnLegend() []string { return f.drawn }

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
		return nil, errors.Wrap(err, "decode rendered plot")
	}
	return img, nil
}

// Render writes the figure to w as PNG.
func (f *Figure) Render(w io.Writer) error {
	defer logging.TimeTrack(time.Now(), "gonum render")
	p, ok, err := f.Build()
	if err != nil {
		return err
	}
	if !ok {
		logging.Debugf("gonum: nothing drawable in %d series; rendering placeholder", len(f.Series))
		return errors.Wrap(png.Encode(w, plot.NoData(f.width, f.height, f.Title)), "encode placeholder")
	}
	wt, err := p.WriterTo(pixels(f.width), pixels(f.height), "png")
	if err != nil {
		return errors.Wrap(err, "prepare plot canvas")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "write plot")
	}
	return nil
}

// Build returns the gonum plot of the figure. ok is false when no series has a
// drawable point.
func (f *Figure) Build() (*gplot.Plot, bool, error) {
	p := gplot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Legend.Top = true
	p.Legend.Left = false

	f.drawn = make([]string, 0, len(f.Series))
	plotted := 0
	maxX, maxY := 0.0, 0.0
	for i := range f.Series {
		label := plot.LegendLabel(f.Legend, i)
		f.drawn = append(f.drawn, label)
		xs, ys := f.Drawable(i)
		if len(xs) == 0 {
			// no points, but the series keeps its legend entry
			p.Legend.Add(label, &plotter.Line{LineStyle: lineStyle(i)})
			continue
		}
		pts := make(plotter.XYs, len(xs))
		for j := range xs {
			pts[j].X, pts[j].Y = xs[j], ys[j]
			maxX = math.Max(maxX, xs[j])
			maxY = math.Max(maxY, ys[j])
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, false, errors.Wrapf(err, "series %d", i+1)
		}
		l.LineStyle = lineStyle(i)
		p.Add(l)
		p.Legend.Add(label, l)
		plotted++
	}
	if plotted == 0 {
		return nil, false, nil
	}
	p.Add(plotter.NewGrid())

	xt := plot.IntegerTicks(math.Max(maxX, 1), 9)
	p.X.Min, p.X.Max = 0, xt[len(xt)-1]
	p.X.Tick.Marker = constantTicks(xt)

	if f.Scale == plot.Log {
		lo, hi, _ := plot.DecadeBounds(f.AllY()...)
		p.Y.Scale = gplot.LogScale{}
		p.Y.Tick.Marker = gplot.LogTicks{Prec: -1}
		p.Y.Min, p.Y.Max = math.Pow(10, float64(lo)), math.Pow(10, float64(hi))
	} else {
		yt := plot.BuildNumericTicks(0, plot.NiceMax(maxY), 6)
		p.Y.Min, p.Y.Max = 0, yt[len(yt)-1]
		p.Y.Tick.Marker = constantTicks(yt)
	}
	return p, true, nil
}

func lineStyle(i int) draw.LineStyle {
	st := plotter.DefaultLineStyle
	st.Color = plotutil.Color(i)
	st.Width = vg.Points(1.5)
	return st
}

func constantTicks(vs []float64) gplot.ConstantTicks {
	ticks := make(gplot.ConstantTicks, len(vs))
	for i, v := range vs {
		ticks[i] = gplot.Tick{Value: v, Label: plot.FormatNumericTick(v)}
	}
	return ticks
}

// pixels converts a pixel count to a vg length at the canvas dpi.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / dpi
}
