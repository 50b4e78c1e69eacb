// Package viewer shows rendered figures in a fyne desktop window.
package viewer

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"github.com/pkg/errors"

	"github.com/iafilius/InDegreePlot/src/logging"
	"github.com/iafilius/InDegreePlot/src/plot"
)

// AppID identifies the viewer to fyne (preferences, window placement).
const AppID = "com.iafilius.indegreeplot"

const defaultTitle = "In-degree plot"

// ErrClosed is returned by Display once the event loop has already run and ended.
var ErrClosed = errors.New("viewer: event loop already finished")

// Viewer is a plot.Displayer that opens one window per figure and runs the fyne event
// loop until it is closed.
type Viewer struct {
	app    fyne.App
	window fyne.Window
	ran    bool
}

var _ plot.Displayer = (*Viewer)(nil)

// New wraps an existing fyne app, e.g. test.NewApp() in tests.
func New(a fyne.App) *Viewer { return &Viewer{app: a} }

// NewDesktop creates the desktop fyne app.
func NewDesktop() *Viewer { return New(app.NewWithID(AppID)) }

// Window returns the window opened by the last Display, or nil.
func (v *Viewer) Window() fyne.Window { return v.window }

// Display shows img and blocks until the window is closed.
func (v *Viewer) Display(img image.Image, title string) error {
	if img == nil {
		return errors.Wrap(plot.ErrInvalidArgument, "viewer: nil image")
	}
	if v.ran {
		return ErrClosed
	}
	if title == "" {
		title = defaultTitle
	}
	w := v.app.NewWindow(title)
	w.SetContent(Content(img))
	b := img.Bounds()
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.CenterOnScreen()
	v.window = w
	v.ran = true
	logging.Infof("[viewer] showing %q (%dx%d); close the window to exit", title, b.Dx(), b.Dy())
	w.ShowAndRun()
	return nil
}

// Content wraps img in a canvas image that keeps its aspect ratio when resized.
func Content(img image.Image) *canvas.Image {
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.ScaleMode = canvas.ImageScaleSmooth
	b := img.Bounds()
	// allow shrinking to half size before the window starts clipping
	c.SetMinSize(fyne.NewSize(float32(b.Dx())/2, float32(b.Dy())/2))
	return c
}
