// Package plot draws in-degree distributions onto a Figure.
//
// A Figure is an explicit drawing surface: series accumulate on it in call order until
// Show hands the composed chart to a Displayer. Concrete figures live in the gochart and
// gonumplot subpackages; plottest has a recording fake.
package plot

import (
	"image"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned for an unrecognized axis-scale mode or backend name.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoDisplay is returned by Show on a figure built without a Displayer.
	ErrNoDisplay = errors.New("no displayer configured")
)

// Axis labels and title used for in-degree charts.
const (
	XLabel            = "In-degree"
	YLabel            = "Nodes"
	DistributionTitle = "In-Degree Distribution"
)

// Scale is the Y axis scale mode.
type Scale int

const (
	Linear Scale = iota
	Log
)

func (s Scale) String() string {
	switch s {
	case Linear:
		return "linear"
	case Log:
		return "log"
	default:
		return "unknown"
	}
}

// ParseScale accepts "linear" or "log" (case-insensitive).
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "log":
		return Log, nil
	}
	return Linear, errors.Wrapf(ErrInvalidArgument, "unknown scale %q (want linear or log)", s)
}

// Series is one line: Y[i] plotted at X[i].
type Series struct {
	X []float64
	Y []float64
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.Y) }

// IndexedSeries plots counts against their position, so counts[i] lands at x = i.
func IndexedSeries(counts []int) Series {
	s := Series{X: make([]float64, len(counts)), Y: make([]float64, len(counts))}
	for i, c := range counts {
		s.X[i] = float64(i)
		s.Y[i] = float64(c)
	}
	return s
}

// Figure is the drawing capability the renderer needs.
type Figure interface {
	Plot(s Series)
	SetLabels(x, y string)
	SetScale(s Scale)
	SetLegend(labels []string)
	SetTitle(title string)
	Show() error
}

// Displayer presents a rendered figure, e.g. in a desktop window.
type Displayer interface {
	Display(img image.Image, title string) error
}

// DisplayFunc adapts a function to Displayer.
type DisplayFunc func(img image.Image, title string) error

func (f DisplayFunc) Display(img image.Image, title string) error { return f(img, title) }

// LegendLabel returns the legend entry for series i. Series past the end of the legend get
// a positional name so every series keeps exactly one entry.
func LegendLabel(legend []string, i int) string {
	if i < len(legend) {
		return legend[i]
	}
	return "Series " + strconv.Itoa(i+1)
}
