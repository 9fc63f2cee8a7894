// Package raster provides the canvas pixel plane and the integer line
// plotting that linepad draws with.
package raster

import (
	"image"
	"image/color"
)

// Pixel is a packed 24-bit RGB value stored in a 32-bit word as
// (R<<16)|(G<<8)|B. The high byte is always zero.
type Pixel uint32

// RGB packs the three channels into a Pixel.
func RGB(r, g, b uint8) Pixel {
	return Pixel(r)<<16 | Pixel(g)<<8 | Pixel(b)
}

// FromColor packs an RGBA color, discarding alpha.
func FromColor(c color.RGBA) Pixel {
	return RGB(c.R, c.G, c.B)
}

// Color unpacks the pixel into an opaque RGBA color.
func (p Pixel) Color() color.RGBA {
	return color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 0xFF}
}

// Buffer is a fixed-size row-major pixel plane with top-left origin and a
// single rollback plane of the same shape. The rollback plane is only a
// meaningful restore target between Snapshot and the following Restore;
// both planes start zeroed (black).
//
// A Buffer is owned by exactly one goroutine and is not safe for
// concurrent use.
type Buffer struct {
	w, h  int
	pix   []Pixel
	saved []Pixel
}

// New returns a buffer of w by h pixels. Both dimensions must be positive.
func New(w, h int) *Buffer {
	return &Buffer{
		w:     w,
		h:     h,
		pix:   make([]Pixel, w*h),
		saved: make([]Pixel, w*h),
	}
}

// Width returns the horizontal pixel count.
func (b *Buffer) Width() int { return b.w }

// Height returns the vertical pixel count.
func (b *Buffer) Height() int { return b.h }

// Plot writes one pixel. Coordinates outside [0,W)x[0,H) are ignored;
// lines running off the canvas edge clip here rather than erroring.
func (b *Buffer) Plot(x, y int, p Pixel) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.pix[y*b.w+x] = p
}

// At returns the pixel at (x, y), or zero when out of bounds.
func (b *Buffer) At(x, y int) Pixel {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return 0
	}
	return b.pix[y*b.w+x]
}

// Fill sets every pixel to p. The rollback plane is left untouched.
func (b *Buffer) Fill(p Pixel) {
	for i := range b.pix {
		b.pix[i] = p
	}
}

// Snapshot records the current pixel plane as the rollback target.
func (b *Buffer) Snapshot() {
	copy(b.saved, b.pix)
}

// Restore rewinds the pixel plane to the last Snapshot.
func (b *Buffer) Restore() {
	copy(b.pix, b.saved)
}

// WriteRGBA copies the pixel plane into dst as opaque RGBA, clipped to
// the smaller of the two surfaces. dst keeps its own memory; the buffer
// never aliases host surfaces.
func (b *Buffer) WriteRGBA(dst *image.RGBA) {
	bounds := dst.Bounds()
	w := min(b.w, bounds.Dx())
	h := min(b.h, bounds.Dy())
	for y := 0; y < h; y++ {
		row := b.pix[y*b.w:]
		off := dst.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for x := 0; x < w; x++ {
			p := row[x]
			dst.Pix[off] = uint8(p >> 16)
			dst.Pix[off+1] = uint8(p >> 8)
			dst.Pix[off+2] = uint8(p)
			dst.Pix[off+3] = 0xFF
			off += 4
		}
	}
}

// RGBA returns a freshly allocated RGBA copy of the pixel plane.
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.w, b.h))
	b.WriteRGBA(img)
	return img
}
