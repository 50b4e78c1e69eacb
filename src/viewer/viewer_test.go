package viewer

import (
	"testing"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iafilius/InDegreePlot/src/datasets"
	"github.com/iafilius/InDegreePlot/src/plot"
	"github.com/iafilius/InDegreePlot/src/plot/gochart"
)

func TestContent_KeepsImageAndAspect(t *testing.T) {
	img := plot.Blank(800, 288)
	c := Content(img)
	assert.Equal(t, img, c.Image)
	assert.Equal(t, canvas.ImageFillContain, c.FillMode)
	assert.Equal(t, float32(400), c.MinSize().Width)
	assert.Equal(t, float32(144), c.MinSize().Height)
}

func TestDisplay_ShowsFigureOnce(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	v := New(a)

	f := gochart.New(gochart.WithDisplay(v))
	require.NoError(t, plot.RenderAll(f, datasets.All(), "linear"))
	require.NoError(t, f.Show())

	w := v.Window()
	require.NotNil(t, w)
	assert.Equal(t, plot.DistributionTitle, w.Title())
	img, ok := w.Content().(*canvas.Image)
	require.True(t, ok)
	fw, fh := f.Size()
	assert.Equal(t, fw, img.Image.Bounds().Dx())
	assert.Equal(t, fh, img.Image.Bounds().Dy())

	// the event loop has run; a second window cannot be served
	assert.ErrorIs(t, f.Show(), ErrClosed)
}

func TestDisplay_DefaultTitleAndNilImage(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	v := New(a)
	assert.ErrorIs(t, v.Display(nil, "x"), plot.ErrInvalidArgument)
	require.NoError(t, v.Display(plot.Blank(800, 288), ""))
	assert.Equal(t, defaultTitle, v.Window().Title())
}
