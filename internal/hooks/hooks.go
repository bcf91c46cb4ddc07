// Package hooks is the page-lifecycle callback registry. The web middleware
// fires these events; anything that wants to react (logging, incident
// recording) registers during startup wiring.
package hooks

import "sync"

// Event identifies a point in the page lifecycle.
type Event int

const (
	// PageReady fires after a full page has been rendered and enhanced.
	PageReady Event = iota
	// ContentSwap fires after a partial content region has been replaced.
	ContentSwap
	// ResponseFailure fires when an asynchronous update fails.
	ResponseFailure
)

// Context describes the occurrence a handler is reacting to.
type Context struct {
	Path      string
	RequestID string
	Status    int
	Partial   bool
}

// Dispatcher invokes registered handlers in registration order. Handlers are
// fire-and-forget per occurrence; a handler runs to completion before the
// next one starts.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Event][]func(Context)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Event][]func(Context))}
}

func (d *Dispatcher) Register(ev Event, fn func(Context)) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	d.handlers[ev] = append(d.handlers[ev], fn)
	d.mu.Unlock()
}

func (d *Dispatcher) Fire(ev Event, ctx Context) {
	d.mu.RLock()
	fns := d.handlers[ev]
	d.mu.RUnlock()
	for _, fn := range fns {
		fn(ctx)
	}
}
