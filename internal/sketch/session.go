package sketch

import (
	"fmt"
	"image"
	"log"
	"time"

	"golang.org/x/mobile/event/key"

	"github.com/example/linepad/internal/clipboard"
	"github.com/example/linepad/internal/notify"
	"github.com/example/linepad/internal/raster"
	"github.com/example/linepad/internal/theme"
)

// messageDur is how long a status flash stays readable.
const messageDur = 2500 * time.Millisecond

// Swapped out by tests.
var (
	clipboardWriteImage = clipboard.WriteImage
	timeNow             = time.Now
)

// Session owns one drawing surface and the two-click line tool on top of
// it. The tool is idle until a click anchors a line start; the next click
// commits the line and returns to idle. All methods must be called from
// the window's event goroutine.
type Session struct {
	buf *raster.Buffer

	th     theme.Theme
	fg, bg raster.Pixel
	fgSet  bool
	bgSet  bool

	anchor   image.Point
	anchored bool

	running  bool
	statusOn bool

	message      string
	messageUntil time.Time

	present    func()
	notifier   *notify.Notifier
	dispatcher *Dispatcher
}

// Option configures a Session.
type Option func(*Session)

// WithTheme selects the colour theme.
func WithTheme(th theme.Theme) Option {
	return func(s *Session) { s.th = th }
}

// WithForeground overrides the theme's stroke colour.
func WithForeground(p raster.Pixel) Option {
	return func(s *Session) {
		s.fg = p
		s.fgSet = true
	}
}

// WithBackground overrides the theme's canvas colour.
func WithBackground(p raster.Pixel) Option {
	return func(s *Session) {
		s.bg = p
		s.bgSet = true
	}
}

// WithPresent registers the callback that pushes the canvas to the
// screen. Without it the session still tracks state but draws nowhere
// visible.
func WithPresent(fn func()) Option {
	return func(s *Session) { s.present = fn }
}

// WithNotifier attaches desktop notifications.
func WithNotifier(n *notify.Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

// WithStatus sets whether the status bar starts visible.
func WithStatus(visible bool) Option {
	return func(s *Session) { s.statusOn = visible }
}

// NewSession creates a running session over buf and primes the canvas
// with the background colour. The default handlers for key, pointer and
// redraw events are registered in that order.
func NewSession(buf *raster.Buffer, opts ...Option) *Session {
	s := &Session{
		buf:      buf,
		th:       *theme.Default(),
		running:  true,
		statusOn: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.fgSet {
		s.fg = raster.FromColor(s.th.Foreground)
	}
	if !s.bgSet {
		s.bg = raster.FromColor(s.th.Background)
	}
	s.buf.Fill(s.bg)
	s.dispatcher = &Dispatcher{}
	s.dispatcher.Register(keyHandler{})
	s.dispatcher.Register(pointerHandler{})
	s.dispatcher.Register(redrawHandler{})
	return s
}

// Register adds an extra event handler behind the defaults.
func (s *Session) Register(h Handler) {
	s.dispatcher.Register(h)
}

// Handle runs one window event through every registered handler.
func (s *Session) Handle(e any) {
	s.dispatcher.Dispatch(e, s)
}

// Buffer returns the session's pixel plane.
func (s *Session) Buffer() *raster.Buffer { return s.buf }

// Theme returns the active theme.
func (s *Session) Theme() theme.Theme { return s.th }

// SetTheme swaps the active theme and re-derives the stroke and canvas
// colours from it, dropping any startup overrides. Pixels already on the
// canvas keep their colour; the new background shows after the next
// clear.
func (s *Session) SetTheme(th theme.Theme) {
	s.th = th
	s.fg = raster.FromColor(th.Foreground)
	s.bg = raster.FromColor(th.Background)
	s.fgSet = false
	s.bgSet = false
}

// Running reports whether the session is still accepting events.
func (s *Session) Running() bool { return s.running }

// Anchor returns the pending line start, if a first click is held.
func (s *Session) Anchor() (image.Point, bool) {
	return s.anchor, s.anchored
}

// StatusVisible reports whether the status bar should be drawn.
func (s *Session) StatusVisible() bool { return s.statusOn }

// Message returns the current status flash, if it has not expired.
func (s *Session) Message() (string, bool) {
	if s.message == "" || timeNow().After(s.messageUntil) {
		return "", false
	}
	return s.message, true
}

// SetPresent installs the callback that pushes the canvas to the
// screen. The display layer binds it once the window exists.
func (s *Session) SetPresent(fn func()) {
	s.present = fn
}

// Present pushes the canvas to the screen.
func (s *Session) Present() {
	if s.present != nil {
		s.present()
	}
}

// Quit stops the session. The owning window loop exits once Running
// reports false.
func (s *Session) Quit() {
	s.running = false
}

// Click advances the line tool. The first click anchors the line start,
// inks that pixel and records the rollback state. The second click
// rewinds to the rollback state and draws the full line from the anchor:
// shift snaps the endpoint to the nearest axis or diagonal through the
// anchor, control draws the line dotted instead of solid. Every click
// presents the result.
func (s *Session) Click(p image.Point, mods key.Modifiers) {
	if !s.anchored {
		s.anchor = p
		s.anchored = true
		s.buf.Plot(p.X, p.Y, s.fg)
		s.buf.Snapshot()
		s.Present()
		return
	}
	s.buf.Restore()
	end := p
	if mods&key.ModShift != 0 {
		end = raster.Snap(s.anchor, p)
	}
	if mods&key.ModControl != 0 {
		s.buf.DottedLine(s.anchor, end, s.fg)
	} else {
		s.buf.Line(s.anchor, end, s.fg)
	}
	s.anchored = false
	s.Present()
}

// Clear wipes the canvas back to the background colour and discards any
// pending anchor.
func (s *Session) Clear() {
	s.buf.Fill(s.bg)
	s.anchored = false
	s.flash("cleared")
	s.Present()
}

// ToggleStatus flips the status bar on or off.
func (s *Session) ToggleStatus() {
	s.statusOn = !s.statusOn
	s.Present()
}

// CopyToClipboard puts the canvas on the system clipboard as a PNG.
func (s *Session) CopyToClipboard() {
	detail := fmt.Sprintf("%dx%d sketch", s.buf.Width(), s.buf.Height())
	if err := clipboardWriteImage(s.buf.RGBA()); err != nil {
		log.Printf("clipboard copy: %v", err)
		s.flash("copy failed")
		s.Present()
		return
	}
	s.notifier.Copy(detail)
	s.flash("copied to clipboard")
	s.Present()
}

func (s *Session) flash(msg string) {
	s.message = msg
	s.messageUntil = timeNow().Add(messageDur)
}
