// Package display owns the window that shows a drawing session. It runs
// the shiny event loop, feeds window events to the session, and blits
// the session's pixel plane to the screen on every present.
package display

import (
	"image"
	"log"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/linepad/internal/sketch"
)

// Options configures the window.
type Options struct {
	// Title is the window title.
	Title string

	// Bind, when set, is called once the window can accept events. send
	// queues an event into the window loop from any goroutine; the
	// returned cleanup runs before the window closes. Used to plumb
	// config reload events in from a watcher goroutine.
	Bind func(send func(e any)) (cleanup func())
}

// Run opens a window sized to the session's canvas and pumps events
// until the session quits or the window dies. It must be called from the
// program's main goroutine and does not return until the window closes.
func Run(sess *sketch.Session, opts Options) {
	driver.Main(func(s screen.Screen) {
		runWindow(s, sess, opts)
	})
}

func runWindow(s screen.Screen, sess *sketch.Session, opts Options) {
	canvas := sess.Buffer()
	width, height := canvas.Width(), canvas.Height()
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  width,
		Height: height,
		Title:  opts.Title,
	})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	if opts.Bind != nil {
		if cleanup := opts.Bind(func(e any) { w.Send(e) }); cleanup != nil {
			defer cleanup()
		}
	}

	sess.SetPresent(func() {
		b, err := s.NewBuffer(image.Point{X: width, Y: height})
		if err != nil {
			log.Printf("new buffer: %v", err)
			return
		}
		defer b.Release()
		frame := b.RGBA()
		canvas.WriteRGBA(frame)
		drawStatus(frame, sess)
		w.Upload(image.Point{}, b, b.Bounds())
		w.Publish()
	})

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			// The canvas keeps its size; repaint into the resized window.
			w.Send(paint.Event{})
		default:
			sess.Handle(e)
		}
		if !sess.Running() {
			return
		}
	}
}
