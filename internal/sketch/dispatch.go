// Package sketch holds the drawing session: the idle/anchored tool state,
// the handlers that turn window events into strokes, and the dispatcher
// that fans events out to them.
package sketch

// Handler consumes one window event against a session. Implementations
// switch on the event's dynamic type and ignore everything else.
type Handler interface {
	Handle(e any, s *Session)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(e any, s *Session)

// Handle calls f.
func (f HandlerFunc) Handle(e any, s *Session) { f(e, s) }

// Dispatcher fans each inbound event out to every registered handler in
// registration order. The handler list belongs to the owning session and
// grows without bound; registration never fails.
type Dispatcher struct {
	handlers []Handler
}

// Register appends h to the handler list.
func (d *Dispatcher) Register(h Handler) {
	d.handlers = append(d.handlers, h)
}

// Dispatch invokes every handler for e, in order, unconditionally. Each
// handler filters on event type itself.
func (d *Dispatcher) Dispatch(e any, s *Session) {
	for _, h := range d.handlers {
		h.Handle(e, s)
	}
}
