package sketch

import (
	"errors"
	"image"
	"testing"
	"time"

	"golang.org/x/mobile/event/key"

	"github.com/example/linepad/internal/raster"
	"github.com/example/linepad/internal/theme"
)

func inkedPoints(b *raster.Buffer, ink raster.Pixel) map[image.Point]bool {
	set := make(map[image.Point]bool)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) == ink {
				set[image.Pt(x, y)] = true
			}
		}
	}
	return set
}

func TestFirstClickAnchorsAndPresents(t *testing.T) {
	presents := 0
	buf := raster.New(20, 20)
	s := NewSession(buf, WithPresent(func() { presents++ }))

	s.Click(image.Pt(5, 5), 0)

	anchor, ok := s.Anchor()
	if !ok || anchor != image.Pt(5, 5) {
		t.Fatalf("anchor = %v, %v, want (5,5), true", anchor, ok)
	}
	if buf.At(5, 5) != raster.FromColor(theme.Default().Foreground) {
		t.Fatalf("anchor pixel not inked")
	}
	if presents != 1 {
		t.Fatalf("first click presented %d times, want 1", presents)
	}
}

func TestSecondClickCommitsLineAndReturnsToIdle(t *testing.T) {
	presents := 0
	buf := raster.New(20, 20)
	s := NewSession(buf, WithPresent(func() { presents++ }))
	fg := raster.FromColor(theme.Default().Foreground)

	s.Click(image.Pt(0, 0), 0)
	s.Click(image.Pt(5, 3), 0)

	want := map[image.Point]bool{
		{0, 0}: true, {1, 1}: true, {2, 1}: true,
		{3, 2}: true, {4, 2}: true, {5, 3}: true,
	}
	got := inkedPoints(buf, fg)
	if len(got) != len(want) {
		t.Fatalf("committed line lit %v, want %v", got, want)
	}
	for pt := range want {
		if !got[pt] {
			t.Fatalf("committed line missing %v; lit %v", pt, got)
		}
	}
	if _, ok := s.Anchor(); ok {
		t.Fatalf("session still anchored after commit")
	}
	if presents != 2 {
		t.Fatalf("click pair presented %d times, want 2", presents)
	}
}

func TestZeroLengthClickPairKeepsOnePixel(t *testing.T) {
	buf := raster.New(20, 20)
	s := NewSession(buf)
	fg := raster.FromColor(theme.Default().Foreground)

	s.Click(image.Pt(7, 7), 0)
	s.Click(image.Pt(7, 7), 0)

	got := inkedPoints(buf, fg)
	if len(got) != 1 || !got[image.Pt(7, 7)] {
		t.Fatalf("zero-length commit lit %v, want exactly (7,7)", got)
	}
	if _, ok := s.Anchor(); ok {
		t.Fatalf("session still anchored after zero-length commit")
	}
}

func TestCommitRewindsPaintSinceAnchor(t *testing.T) {
	buf := raster.New(20, 20)
	s := NewSession(buf)
	fg := raster.FromColor(theme.Default().Foreground)

	s.Click(image.Pt(0, 0), 0)
	buf.Plot(10, 10, fg)
	s.Click(image.Pt(5, 3), 0)

	if buf.At(10, 10) == fg {
		t.Fatalf("commit kept paint drawn after the anchor")
	}
	if buf.At(5, 3) != fg {
		t.Fatalf("commit lost the line itself")
	}
}

func TestShiftSnapsSecondClick(t *testing.T) {
	buf := raster.New(20, 20)
	s := NewSession(buf)
	fg := raster.FromColor(theme.Default().Foreground)

	s.Click(image.Pt(10, 10), 0)
	s.Click(image.Pt(12, 3), key.ModShift)

	got := inkedPoints(buf, fg)
	if len(got) != 8 {
		t.Fatalf("snapped line lit %d pixels %v, want vertical run of 8", len(got), got)
	}
	for y := 3; y <= 10; y++ {
		if !got[image.Pt(10, y)] {
			t.Fatalf("snapped line missing (10,%d); lit %v", y, got)
		}
	}
}

func TestControlCommitsDottedLine(t *testing.T) {
	buf := raster.New(30, 4)
	s := NewSession(buf)
	fg := raster.FromColor(theme.Default().Foreground)

	s.Click(image.Pt(0, 0), 0)
	s.Click(image.Pt(21, 0), key.ModControl)

	want := map[image.Point]bool{
		{0, 0}: true, {1, 0}: true, {10, 0}: true,
		{11, 0}: true, {20, 0}: true, {21, 0}: true,
	}
	got := inkedPoints(buf, fg)
	if len(got) != len(want) {
		t.Fatalf("dotted commit lit %v, want %v", got, want)
	}
	for pt := range want {
		if !got[pt] {
			t.Fatalf("dotted commit missing %v; lit %v", pt, got)
		}
	}
}

func TestShiftControlSnapsThenDots(t *testing.T) {
	buf := raster.New(30, 8)
	s := NewSession(buf)
	fg := raster.FromColor(theme.Default().Foreground)

	s.Click(image.Pt(0, 0), 0)
	s.Click(image.Pt(21, 2), key.ModShift|key.ModControl)

	// Snap flattens (21,2) onto the horizontal axis, then the dotted
	// stroke lights steps 0,1,10,11,20,21 along it.
	got := inkedPoints(buf, fg)
	for _, x := range []int{0, 1, 10, 11, 20, 21} {
		if !got[image.Pt(x, 0)] {
			t.Fatalf("snapped dotted commit missing (%d,0); lit %v", x, got)
		}
	}
	if len(got) != 6 {
		t.Fatalf("snapped dotted commit lit %d pixels %v, want 6", len(got), got)
	}
}

func TestAnchorSnapshotThenAxisAlignedShiftCommit(t *testing.T) {
	buf := raster.New(30, 20)
	s := NewSession(buf)
	fg := raster.FromColor(theme.Default().Foreground)

	s.Click(image.Pt(10, 10), 0)
	if got := inkedPoints(buf, fg); len(got) != 1 || !got[image.Pt(10, 10)] {
		t.Fatalf("first click lit %v, want exactly (10,10)", got)
	}
	// The rollback state captured at anchor time includes the anchor
	// pixel itself.
	buf.Restore()
	if got := inkedPoints(buf, fg); len(got) != 1 || !got[image.Pt(10, 10)] {
		t.Fatalf("rollback state lit %v, want the anchor pixel", got)
	}

	// Snap leaves an already horizontal endpoint alone.
	s.Click(image.Pt(20, 10), key.ModShift)
	got := inkedPoints(buf, fg)
	if len(got) != 11 {
		t.Fatalf("committed run lit %d pixels %v, want 11", len(got), got)
	}
	for x := 10; x <= 20; x++ {
		if !got[image.Pt(x, 10)] {
			t.Fatalf("committed run missing (%d,10); lit %v", x, got)
		}
	}
	if _, ok := s.Anchor(); ok {
		t.Fatalf("session still anchored after commit")
	}
}

func TestClearWipesCanvasAndDiscardsAnchor(t *testing.T) {
	presents := 0
	buf := raster.New(20, 20)
	s := NewSession(buf, WithPresent(func() { presents++ }))
	fg := raster.FromColor(theme.Default().Foreground)

	s.Click(image.Pt(3, 3), 0)
	s.Clear()

	if got := inkedPoints(buf, fg); len(got) != 0 {
		t.Fatalf("clear left pixels inked: %v", got)
	}
	if _, ok := s.Anchor(); ok {
		t.Fatalf("clear kept the pending anchor")
	}
	if presents != 2 {
		t.Fatalf("click then clear presented %d times, want 2", presents)
	}

	// The next click starts a fresh line, not a commit.
	s.Click(image.Pt(9, 9), 0)
	if got := inkedPoints(buf, fg); len(got) != 1 || !got[image.Pt(9, 9)] {
		t.Fatalf("click after clear lit %v, want exactly (9,9)", got)
	}
}

func TestClearPaintsBackgroundColour(t *testing.T) {
	bg := raster.RGB(10, 20, 30)
	buf := raster.New(8, 8)
	s := NewSession(buf, WithBackground(bg))

	if buf.At(0, 0) != bg {
		t.Fatalf("new session canvas = %06x, want background %06x", buf.At(0, 0), bg)
	}
	buf.Plot(4, 4, raster.RGB(255, 0, 0))
	s.Clear()
	if buf.At(4, 4) != bg {
		t.Fatalf("clear painted %06x, want background %06x", buf.At(4, 4), bg)
	}
}

func TestQuitStopsSession(t *testing.T) {
	s := NewSession(raster.New(4, 4))
	if !s.Running() {
		t.Fatalf("new session not running")
	}
	s.Quit()
	if s.Running() {
		t.Fatalf("session still running after quit")
	}
}

func TestCopyToClipboardSendsCanvas(t *testing.T) {
	orig := clipboardWriteImage
	t.Cleanup(func() { clipboardWriteImage = orig })
	var got image.Image
	clipboardWriteImage = func(img image.Image) error {
		got = img
		return nil
	}

	buf := raster.New(12, 9)
	s := NewSession(buf)
	s.CopyToClipboard()

	if got == nil {
		t.Fatalf("copy never reached the clipboard")
	}
	if b := got.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Fatalf("copied image is %dx%d, want 12x9", b.Dx(), b.Dy())
	}
	if msg, ok := s.Message(); !ok || msg != "copied to clipboard" {
		t.Fatalf("copy flashed %q, %v", msg, ok)
	}
}

func TestCopyFailureFlashesWithoutStopping(t *testing.T) {
	orig := clipboardWriteImage
	t.Cleanup(func() { clipboardWriteImage = orig })
	clipboardWriteImage = func(img image.Image) error {
		return errors.New("no display")
	}

	s := NewSession(raster.New(4, 4))
	s.CopyToClipboard()

	if msg, ok := s.Message(); !ok || msg != "copy failed" {
		t.Fatalf("failed copy flashed %q, %v", msg, ok)
	}
	if !s.Running() {
		t.Fatalf("failed copy stopped the session")
	}
}

func TestMessageExpires(t *testing.T) {
	now := time.Unix(1700000000, 0)
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = time.Now })

	s := NewSession(raster.New(4, 4))
	s.Clear()
	if msg, ok := s.Message(); !ok || msg != "cleared" {
		t.Fatalf("clear flashed %q, %v", msg, ok)
	}
	now = now.Add(3 * time.Second)
	if msg, ok := s.Message(); ok {
		t.Fatalf("flash %q still visible after expiry", msg)
	}
}

func TestSetThemeRederivesColours(t *testing.T) {
	buf := raster.New(8, 8)
	s := NewSession(buf, WithForeground(raster.RGB(1, 2, 3)))

	next := theme.Default()
	next.Foreground.R, next.Foreground.G, next.Foreground.B = 200, 100, 50
	s.SetTheme(*next)

	s.Click(image.Pt(2, 2), 0)
	if got, want := buf.At(2, 2), raster.RGB(200, 100, 50); got != want {
		t.Fatalf("stroke after theme change = %06x, want %06x", got, want)
	}
}

func TestStatusToggle(t *testing.T) {
	s := NewSession(raster.New(4, 4))
	if !s.StatusVisible() {
		t.Fatalf("status bar hidden by default")
	}
	s.ToggleStatus()
	if s.StatusVisible() {
		t.Fatalf("toggle left the status bar visible")
	}
	s.ToggleStatus()
	if !s.StatusVisible() {
		t.Fatalf("second toggle left the status bar hidden")
	}

	hidden := NewSession(raster.New(4, 4), WithStatus(false))
	if hidden.StatusVisible() {
		t.Fatalf("WithStatus(false) started visible")
	}
}
