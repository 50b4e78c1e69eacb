package plot

import (
	"github.com/iafilius/InDegreePlot/src/datasets"
	"github.com/iafilius/InDegreePlot/src/logging"
)

// RenderDistribution draws counts as one more line on fig, labelled by the shared legend,
// with the Y axis in the given scale mode. An unknown scale draws nothing and returns an
// error matching ErrInvalidArgument.
func RenderDistribution(fig Figure, counts []int, scale string, legend []string) error {
	sc, err := ParseScale(scale)
	if err != nil {
		return err
	}
	fig.Plot(IndexedSeries(counts))
	fig.SetLabels(XLabel, YLabel)
	fig.SetLegend(legend)
	fig.SetScale(sc)
	fig.SetTitle(DistributionTitle)
	logging.Debugf("plotted %d in-degree buckets scale=%s", len(counts), sc)
	return nil
}

// RenderAll draws every dataset on fig in order, with the legend built from their labels.
func RenderAll(fig Figure, ds []datasets.Dataset, scale string) error {
	legend := datasets.Labels(ds)
	for _, d := range ds {
		if err := RenderDistribution(fig, d.Counts, scale, legend); err != nil {
			return err
		}
	}
	return nil
}
