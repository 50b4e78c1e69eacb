package plot_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iafilius/InDegreePlot/src/datasets"
	"github.com/iafilius/InDegreePlot/src/plot"
	"github.com/iafilius/InDegreePlot/src/plot/plottest"
)

func TestRenderDistribution_SmallHistogram(t *testing.T) {
	rec := &plottest.Recorder{}
	err := plot.RenderDistribution(rec, []int{0, 0, 1, 2, 1}, "linear", []string{"Shuffle = 30"})
	require.NoError(t, err)

	require.Len(t, rec.Series, 1)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, rec.Series[0].X)
	assert.Equal(t, []float64{0, 0, 1, 2, 1}, rec.Series[0].Y)
	assert.Equal(t, "Nodes", rec.YLabel)
	assert.Equal(t, "In-degree", rec.XLabel)
	assert.Equal(t, "In-Degree Distribution", rec.Title)
	assert.Equal(t, plot.Linear, rec.Scale)
	assert.Equal(t, []string{
		"plot(5)",
		"labels(In-degree,Nodes)",
		"legend(1)",
		"scale(linear)",
		"title(In-Degree Distribution)",
	}, rec.Calls)
	assert.Zero(t, rec.Shown, "rendering must not display")
}

func TestRenderDistribution_Scales(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want plot.Scale
	}{
		{"linear", plot.Linear},
		{"log", plot.Log},
		{" LOG ", plot.Log},
	} {
		t.Run(tc.in, func(t *testing.T) {
			rec := &plottest.Recorder{}
			require.NoError(t, plot.RenderDistribution(rec, []int{3, 1, 4}, tc.in, nil))
			assert.Equal(t, tc.want, rec.Scale)
		})
	}
}

func TestRenderDistribution_InvalidScale(t *testing.T) {
	for _, s := range []string{"", "symlog", "logit", "lin"} {
		rec := &plottest.Recorder{}
		err := plot.RenderDistribution(rec, []int{1, 2}, s, nil)
		require.Error(t, err, "scale %q", s)
		assert.True(t, errors.Is(err, plot.ErrInvalidArgument), "scale %q: %v", s, err)
		assert.Empty(t, rec.Calls, "nothing may be drawn for scale %q", s)
	}
}

func TestRenderDistribution_EmptyAccepted(t *testing.T) {
	rec := &plottest.Recorder{}
	require.NoError(t, plot.RenderDistribution(rec, nil, "log", nil))
	require.Len(t, rec.Series, 1)
	assert.Zero(t, rec.Series[0].Len())
}

func TestRenderAll_AccumulatesInOrder(t *testing.T) {
	rec := &plottest.Recorder{}
	ds := datasets.All()
	require.NoError(t, plot.RenderAll(rec, ds, "linear"))

	require.Len(t, rec.Series, len(ds))
	for i, d := range ds {
		assert.Equal(t, len(d.Counts), rec.Series[i].Len(), d.Name())
		assert.Equal(t, float64(d.Counts[len(d.Counts)-1]), rec.Series[i].Y[len(d.Counts)-1], d.Name())
	}
	assert.Equal(t, []string{"Shuffle = 30", "Random = 30", "Shuffle = 50", "Random = 50"}, rec.LegendEntries())
}

func TestRenderAll_LegendGrowsWithCalls(t *testing.T) {
	rec := &plottest.Recorder{}
	legend := []string{"a", "b"}
	for i := 0; i < 3; i++ {
		require.NoError(t, plot.RenderDistribution(rec, []int{i, i + 1}, "linear", legend))
		assert.Len(t, rec.LegendEntries(), i+1)
	}
	assert.Equal(t, []string{"a", "b", "Series 3"}, rec.LegendEntries())
}

func TestRenderAll_StopsOnInvalidScale(t *testing.T) {
	rec := &plottest.Recorder{}
	err := plot.RenderAll(rec, datasets.All(), "cubic")
	assert.ErrorIs(t, err, plot.ErrInvalidArgument)
	assert.Empty(t, rec.Series)
}
