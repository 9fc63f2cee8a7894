package sketch

import (
	"image"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
)

// keyHandler maps key presses to session operations. Releases and
// repeats are ignored.
type keyHandler struct{}

func (keyHandler) Handle(e any, s *Session) {
	ev, ok := e.(key.Event)
	if !ok || ev.Direction != key.DirPress {
		return
	}
	ctrl := ev.Modifiers&key.ModControl != 0
	switch {
	case ev.Code == key.CodeEscape, ev.Rune == 'q', ev.Rune == 'Q':
		s.Quit()
	case ctrl && (ev.Rune == 'c' || ev.Rune == 'C' || ev.Code == key.CodeC):
		s.CopyToClipboard()
	case ev.Rune == 'c', ev.Rune == 'C':
		s.Clear()
	case ev.Rune == 'h', ev.Rune == 'H':
		s.ToggleStatus()
	}
}

// pointerHandler feeds left button presses to the line tool. Window
// coordinates truncate to canvas pixels.
type pointerHandler struct{}

func (pointerHandler) Handle(e any, s *Session) {
	ev, ok := e.(mouse.Event)
	if !ok || ev.Button != mouse.ButtonLeft || ev.Direction != mouse.DirPress {
		return
	}
	s.Click(image.Pt(int(ev.X), int(ev.Y)), ev.Modifiers)
}

// redrawHandler re-presents the canvas when the window system asks for a
// repaint. Nothing is recomputed; the pixel plane is the source of truth.
type redrawHandler struct{}

func (redrawHandler) Handle(e any, s *Session) {
	if _, ok := e.(paint.Event); ok {
		s.Present()
	}
}
