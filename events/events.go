// Package events carries notifications from pty reader goroutines and
// watchers to the render thread. The render thread blocks in the window
// system's wait call, so every post also fires a wake callback that
// interrupts it (glfw.PostEmptyEvent in the live binary).
package events

import (
	"sync"
	"sync/atomic"
)

// Kind discriminates events.
type Kind int

const (
	// Wakeup carries no payload; pty output arrived and a redraw is due.
	Wakeup Kind = iota
	// TitleChanged carries PaneID and Title from an OSC title update.
	TitleChanged
	// PaneExited carries PaneID whose child process ended.
	PaneExited
	// Bell carries PaneID that received BEL.
	Bell
	// ConfigReloaded signals the config file changed on disk.
	ConfigReloaded
)

// Event is one notification. Fields beyond Kind are set per kind.
type Event struct {
	Kind   Kind
	PaneID int
	Title  string
}

// Proxy is a multi-producer queue drained by the render thread. Wakeup
// is pure redraw pressure and coalesces into a flag; every other kind
// carries a payload that cannot be re-derived (an exited pane id, a
// title), so those queue without bound and are never dropped.
type Proxy struct {
	wakeup atomic.Bool
	mu     sync.Mutex
	queue  []Event
	wake   func()
}

// NewProxy builds a proxy; wake runs after every post and must be safe
// to call from any goroutine.
func NewProxy(wake func()) *Proxy {
	return &Proxy{wake: wake}
}

// Post enqueues without waiting on the consumer; pty readers call this
// from their own goroutines, including during Session.Close.
func (p *Proxy) Post(e Event) {
	if e.Kind == Wakeup {
		p.wakeup.Store(true)
	} else {
		p.mu.Lock()
		p.queue = append(p.queue, e)
		p.mu.Unlock()
	}
	if p.wake != nil {
		p.wake()
	}
}

// Drain returns every pending event without blocking. Coalesced redraw
// pressure surfaces as a single Wakeup ahead of the payload events.
func (p *Proxy) Drain() []Event {
	var out []Event
	if p.wakeup.Swap(false) {
		out = append(out, Event{Kind: Wakeup})
	}
	p.mu.Lock()
	if len(p.queue) > 0 {
		out = append(out, p.queue...)
		p.queue = p.queue[:0]
	}
	p.mu.Unlock()
	return out
}
