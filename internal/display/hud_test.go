package display

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/linepad/internal/raster"
	"github.com/example/linepad/internal/sketch"
	"github.com/example/linepad/internal/theme"
)

func TestStatusLineTracksToolState(t *testing.T) {
	sess := sketch.NewSession(raster.New(60, 40))
	if got, want := statusLine(sess), "60x40  midnight  idle"; got != want {
		t.Fatalf("idle status line = %q, want %q", got, want)
	}
	sess.Click(image.Pt(3, 7), 0)
	if got, want := statusLine(sess), "60x40  midnight  anchor 3,7"; got != want {
		t.Fatalf("anchored status line = %q, want %q", got, want)
	}
}

func TestDrawStatusPaintsBottomBar(t *testing.T) {
	sess := sketch.NewSession(raster.New(120, 60))
	frame := image.NewRGBA(image.Rect(0, 0, 120, 60))
	drawStatus(frame, sess)

	back := theme.Default().StatusBack
	if got := frame.RGBAAt(0, 59); got != back {
		t.Fatalf("bar corner = %v, want %v", got, back)
	}
	if got := frame.RGBAAt(0, 60-statusHeight-1); got != (color.RGBA{}) {
		t.Fatalf("row above the bar was painted: %v", got)
	}

	text := theme.Default().StatusText
	found := false
	for y := 60 - statusHeight; y < 60 && !found; y++ {
		for x := 0; x < 120; x++ {
			if frame.RGBAAt(x, y) == text {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatalf("no status text pixels drawn in the bar")
	}
}

func TestDrawStatusHiddenLeavesFrameUntouched(t *testing.T) {
	sess := sketch.NewSession(raster.New(40, 40), sketch.WithStatus(false))
	frame := image.NewRGBA(image.Rect(0, 0, 40, 40))
	drawStatus(frame, sess)
	for i, b := range frame.Pix {
		if b != 0 {
			t.Fatalf("hidden status bar wrote byte %d at offset %d", b, i)
		}
	}
}
