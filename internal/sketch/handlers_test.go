package sketch

import (
	"image"
	"testing"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"

	"github.com/example/linepad/internal/raster"
)

func TestLeftPressReachesLineTool(t *testing.T) {
	s := NewSession(raster.New(20, 20))
	s.Handle(mouse.Event{
		X: 5.7, Y: 5.2,
		Button:    mouse.ButtonLeft,
		Direction: mouse.DirPress,
	})
	anchor, ok := s.Anchor()
	if !ok || anchor != image.Pt(5, 5) {
		t.Fatalf("anchor = %v, %v, want truncated (5,5), true", anchor, ok)
	}
}

func TestOtherPointerEventsIgnored(t *testing.T) {
	events := map[string]mouse.Event{
		"right press":  {X: 3, Y: 3, Button: mouse.ButtonRight, Direction: mouse.DirPress},
		"middle press": {X: 3, Y: 3, Button: mouse.ButtonMiddle, Direction: mouse.DirPress},
		"left release": {X: 3, Y: 3, Button: mouse.ButtonLeft, Direction: mouse.DirRelease},
		"motion":       {X: 3, Y: 3, Button: mouse.ButtonNone, Direction: mouse.DirNone},
		"wheel":        {X: 3, Y: 3, Button: mouse.ButtonWheelUp, Direction: mouse.DirStep},
	}
	for name, ev := range events {
		s := NewSession(raster.New(8, 8))
		s.Handle(ev)
		if _, ok := s.Anchor(); ok {
			t.Errorf("%s event anchored the line tool", name)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	events := map[string]key.Event{
		"escape":  {Code: key.CodeEscape, Direction: key.DirPress},
		"lower q": {Rune: 'q', Code: key.CodeQ, Direction: key.DirPress},
		"upper q": {Rune: 'Q', Code: key.CodeQ, Modifiers: key.ModShift, Direction: key.DirPress},
	}
	for name, ev := range events {
		s := NewSession(raster.New(4, 4))
		s.Handle(ev)
		if s.Running() {
			t.Errorf("%s did not stop the session", name)
		}
	}
}

func TestKeyReleaseAndRepeatIgnored(t *testing.T) {
	s := NewSession(raster.New(4, 4))
	s.Handle(key.Event{Rune: 'q', Code: key.CodeQ, Direction: key.DirRelease})
	s.Handle(key.Event{Rune: 'q', Code: key.CodeQ, Direction: key.DirNone})
	if !s.Running() {
		t.Fatalf("release or repeat stopped the session")
	}
}

func TestClearKeyWipesCanvas(t *testing.T) {
	buf := raster.New(8, 8)
	s := NewSession(buf)
	fg := raster.FromColor(s.Theme().Foreground)

	s.Click(image.Pt(2, 2), 0)
	s.Handle(key.Event{Rune: 'c', Code: key.CodeC, Direction: key.DirPress})

	if got := inkedPoints(buf, fg); len(got) != 0 {
		t.Fatalf("clear key left pixels inked: %v", got)
	}
	if _, ok := s.Anchor(); ok {
		t.Fatalf("clear key kept the pending anchor")
	}
}

func TestControlCCopiesInsteadOfClearing(t *testing.T) {
	orig := clipboardWriteImage
	t.Cleanup(func() { clipboardWriteImage = orig })
	copied := 0
	clipboardWriteImage = func(img image.Image) error {
		copied++
		return nil
	}

	buf := raster.New(8, 8)
	s := NewSession(buf)
	fg := raster.FromColor(s.Theme().Foreground)
	s.Click(image.Pt(1, 1), 0)
	s.Click(image.Pt(5, 5), 0)

	s.Handle(key.Event{Rune: 'c', Code: key.CodeC, Modifiers: key.ModControl, Direction: key.DirPress})

	if copied != 1 {
		t.Fatalf("control-c copied %d times, want 1", copied)
	}
	if got := inkedPoints(buf, fg); len(got) == 0 {
		t.Fatalf("control-c cleared the canvas")
	}
}

func TestControlCMatchesOnCodeWhenRuneMissing(t *testing.T) {
	orig := clipboardWriteImage
	t.Cleanup(func() { clipboardWriteImage = orig })
	copied := 0
	clipboardWriteImage = func(img image.Image) error {
		copied++
		return nil
	}

	s := NewSession(raster.New(4, 4))
	s.Handle(key.Event{Rune: -1, Code: key.CodeC, Modifiers: key.ModControl, Direction: key.DirPress})
	if copied != 1 {
		t.Fatalf("control-c with no rune copied %d times, want 1", copied)
	}
}

func TestStatusKeyToggles(t *testing.T) {
	s := NewSession(raster.New(4, 4))
	s.Handle(key.Event{Rune: 'h', Code: key.CodeH, Direction: key.DirPress})
	if s.StatusVisible() {
		t.Fatalf("h did not hide the status bar")
	}
	s.Handle(key.Event{Rune: 'H', Code: key.CodeH, Modifiers: key.ModShift, Direction: key.DirPress})
	if !s.StatusVisible() {
		t.Fatalf("H did not show the status bar again")
	}
}

func TestPaintEventPresents(t *testing.T) {
	presents := 0
	s := NewSession(raster.New(4, 4), WithPresent(func() { presents++ }))
	s.Handle(paint.Event{})
	if presents != 1 {
		t.Fatalf("paint event presented %d times, want 1", presents)
	}
}

func TestUnrecognisedEventsAreNoOps(t *testing.T) {
	presents := 0
	s := NewSession(raster.New(4, 4), WithPresent(func() { presents++ }))
	s.Handle(struct{ Weird int }{42})
	s.Handle("resize")
	s.Handle(nil)
	if presents != 0 {
		t.Fatalf("unrecognised events presented %d times", presents)
	}
	if !s.Running() {
		t.Fatalf("unrecognised events stopped the session")
	}
	if _, ok := s.Anchor(); ok {
		t.Fatalf("unrecognised events anchored the line tool")
	}
}
