package display

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/linepad/internal/sketch"
)

// statusHeight is the pixel height of the status bar overlay.
const statusHeight = 18

// statusLine formats the left-hand status text: canvas size, theme name
// and the line tool's state.
func statusLine(sess *sketch.Session) string {
	buf := sess.Buffer()
	state := "idle"
	if anchor, ok := sess.Anchor(); ok {
		state = fmt.Sprintf("anchor %d,%d", anchor.X, anchor.Y)
	}
	return fmt.Sprintf("%dx%d  %s  %s", buf.Width(), buf.Height(), sess.Theme().Name, state)
}

// drawStatus overlays the status bar on the bottom rows of the frame.
// The bar lives only in the presented frame; the session's pixel plane
// underneath stays intact. Hidden bars draw nothing, including any
// pending flash message.
func drawStatus(dst *image.RGBA, sess *sketch.Session) {
	if !sess.StatusVisible() {
		return
	}
	th := sess.Theme()
	bounds := dst.Bounds()
	bar := image.Rect(bounds.Min.X, bounds.Max.Y-statusHeight, bounds.Max.X, bounds.Max.Y)
	draw.Draw(dst, bar, &image.Uniform{th.StatusBack}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()
	descent := face.Metrics().Descent.Ceil()
	baseline := bar.Min.Y + (statusHeight-ascent-descent)/2 + ascent

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.StatusText), Face: face}
	d.Dot = fixed.P(bar.Min.X+6, baseline)
	d.DrawString(statusLine(sess))

	if msg, ok := sess.Message(); ok {
		wmsg := d.MeasureString(msg).Ceil()
		d.Dot = fixed.P(bar.Max.X-wmsg-6, baseline)
		d.DrawString(msg)
	}
}
