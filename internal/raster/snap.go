package raster

import "image"

// Snap constrains free to the nearest of vertical, horizontal, or 45
// degree diagonal through anchor. With dx, dy the signed offsets of
// free from anchor:
//
//	|dx| < |dy|/2  -> vertical, keep free's y
//	|dy| < |dx|/2  -> horizontal, keep free's x
//	otherwise      -> diagonal, run min(|dx|, |dy|) along both axes
//
// The comparisons are strict and the division truncates, so boundary
// ratios fall through to the diagonal branch.
func Snap(anchor, free image.Point) image.Point {
	dx := free.X - anchor.X
	dy := free.Y - anchor.Y
	adx := iabs(dx)
	ady := iabs(dy)
	switch {
	case adx < ady/2:
		return image.Pt(anchor.X, free.Y)
	case ady < adx/2:
		return image.Pt(free.X, anchor.Y)
	}
	m := min(adx, ady)
	x := anchor.X - m
	if dx > 0 {
		x = anchor.X + m
	}
	y := anchor.Y - m
	if dy > 0 {
		y = anchor.Y + m
	}
	return image.Pt(x, y)
}
