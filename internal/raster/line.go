package raster

import "image"

// Dotted strokes light two steps out of every ten, counted along the
// Bresenham step sequence rather than screen distance.
const (
	dotPeriod = 10
	dotRun    = 2
)

// Line plots the segment from p0 to p1 using an integer Bresenham
// stepper: the error term starts at |dx| - |dy| and one axis (or both,
// on ties) advances per iteration. Every point is plotted, both
// endpoints included; a zero-length segment plots exactly one pixel.
func (b *Buffer) Line(p0, p1 image.Point, p Pixel) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y
	dx := iabs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -iabs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.Plot(x0, y0, p)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DottedLine plots the segment with Line's exact stepping but only
// lights steps whose index falls inside the duty cycle. The index is 0
// at p0 and increments once per iteration, final pixel included, so the
// anchor end of a stroke always carries ink.
func (b *Buffer) DottedLine(p0, p1 image.Point, p Pixel) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y
	dx := iabs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -iabs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	step := 0
	for {
		if step%dotPeriod < dotRun {
			b.Plot(x0, y0, p)
		}
		step++
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
