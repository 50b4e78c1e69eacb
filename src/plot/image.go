package plot

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// NoDataCaption is drawn on figures that have nothing to plot.
const NoDataCaption = "No data to plot"

// Blank returns a white w×h image.
func Blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// DrawCaption draws text centered on a copy of img using the 7x13 basic font.
func DrawCaption(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.RGBA{R: 80, G: 80, B: 80, A: 255}), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + (b.Dx()-tw)/2
	y := b.Min.Y + (b.Dy()+face.Metrics().Ascent.Ceil())/2
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

// NoData returns the placeholder image for a degenerate figure.
func NoData(w, h int, title string) image.Image {
	text := NoDataCaption
	if title != "" {
		text = title + ": " + strings.ToLower(NoDataCaption)
	}
	return DrawCaption(Blank(w, h), text)
}
