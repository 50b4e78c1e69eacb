// indegreeplot draws the in-degree distributions of the shuffle and random overlays
// (K = 30 and K = 50) on one line chart and shows it in a window.
//
// The datasets, scale and labels are fixed; flags only cover logging and the chart backend.
package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/iafilius/InDegreePlot/src/datasets"
	"github.com/iafilius/InDegreePlot/src/logging"
	"github.com/iafilius/InDegreePlot/src/plot"
	"github.com/iafilius/InDegreePlot/src/plot/gochart"
	"github.com/iafilius/InDegreePlot/src/plot/gonumplot"
	"github.com/iafilius/InDegreePlot/src/viewer"
)

// scale of the Y axis used for the distribution chart.
const scale = "linear"

var (
	cli      = kingpin.New("indegreeplot", "Plot the in-degree distributions of the shuffle and random overlays.")
	logLevel = cli.Flag("log-level", "Log level (debug|info|warn|error)").Default("info").Envar("INDEGREEPLOT_LOG_LEVEL").String()
	backend  = cli.Flag("backend", "Chart backend (gochart|gonum)").Default("gochart").Envar("INDEGREEPLOT_BACKEND").String()
)

// newFigure returns an empty figure of the named backend that displays through d.
func newFigure(name string, d plot.Displayer) (plot.Figure, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gochart", "go-chart":
		return gochart.New(gochart.WithDisplay(d)), nil
	case "gonum", "gonumplot":
		return gonumplot.New(gonumplot.WithDisplay(d)), nil
	}
	return nil, errors.Wrapf(plot.ErrInvalidArgument, "unknown backend %q (want gochart or gonum)", name)
}

// run renders every dataset on one figure and shows it.
func run(backendName string, d plot.Displayer) error {
	fig, err := newFigure(backendName, d)
	if err != nil {
		return err
	}
	ds := datasets.All()
	for _, set := range ds {
		if err := set.Validate(); err != nil {
			logging.Warnf("%v", err)
		}
	}
	if err := plot.RenderAll(fig, ds, scale); err != nil {
		return errors.Wrap(err, "render distributions")
	}
	logging.Infof("rendered %d datasets on the %s backend", len(ds), backendName)
	return errors.Wrap(fig.Show(), "show figure")
}

func main() {
	kingpin.MustParse(cli.Parse(os.Args[1:]))
	logging.SetLogLevel(*logLevel)

	if err := run(*backend, viewer.NewDesktop()); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
