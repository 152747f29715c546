package terminal

import "sync"

// FairMutex is a mutual-exclusion lock with bounded starvation: a
// contender that arrives while the lock is held acquires it before any
// later arrival gets a second turn. It layers a hand-off mutex over the
// data mutex — Lock holds "next" only long enough to take "mu", so a
// releasing goroutine cannot immediately re-acquire past a parked waiter.
type FairMutex struct {
	next sync.Mutex
	mu   sync.Mutex
}

// Lock acquires the mutex, queueing fairly behind earlier contenders.
func (m *FairMutex) Lock() {
	m.next.Lock()
	m.mu.Lock()
	m.next.Unlock()
}

// Unlock releases the mutex.
func (m *FairMutex) Unlock() {
	m.mu.Unlock()
}

// Handle is the shared-ownership wrapper around one pane's Model. The
// owning tab and the pane's writer goroutine each hold a reference; all
// access goes through the two scoped-access methods so neither the lock
// nor the model pointer can escape a critical section. Critical sections
// must stay short: copy a snapshot or advance one chunk, nothing that
// touches the GPU, rasterizes, or blocks on I/O.
type Handle struct {
	fair  FairMutex
	model Model
}

// NewHandle wraps a model for shared access.
func NewHandle(m Model) *Handle {
	return &Handle{model: m}
}

// WithRead runs fn with exclusive access to the model. The render and
// input query paths use this; the name documents intent, the lock is the
// same exclusive fair mutex as WithWrite.
func (h *Handle) WithRead(fn func(Model)) {
	h.fair.Lock()
	defer h.fair.Unlock()
	fn(h.model)
}

// WithWrite runs fn with exclusive access to the model. The writer
// goroutine and input-driven mutations use this.
func (h *Handle) WithWrite(fn func(Model)) {
	h.fair.Lock()
	defer h.fair.Unlock()
	fn(h.model)
}
