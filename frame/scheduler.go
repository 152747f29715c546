// Package frame decides when the render thread draws. Frames are demand
// driven: anything that changes visible state marks the scheduler dirty,
// and the event loop renders once per wakeup at most. The only periodic
// source is the cursor blink clock.
package frame

import (
	"sync/atomic"
	"time"
)

// BlinkInterval is the half-period of the cursor blink: the cursor is
// visible for one interval, hidden for the next.
const BlinkInterval = 500 * time.Millisecond

// Scheduler coalesces redraw requests. MarkDirty is safe from any
// goroutine; the remaining methods belong to the render thread.
type Scheduler struct {
	dirty atomic.Bool

	blinkOn  bool
	lastFlip time.Time
	interval time.Duration
}

// NewScheduler starts with the cursor visible and one frame owed.
func NewScheduler() *Scheduler {
	s := &Scheduler{blinkOn: true, lastFlip: time.Now(), interval: BlinkInterval}
	s.dirty.Store(true)
	return s
}

// MarkDirty requests a frame.
func (s *Scheduler) MarkDirty() {
	s.dirty.Store(true)
}

// ShouldRender consumes the dirty flag, reporting whether a frame is due.
func (s *Scheduler) ShouldRender() bool {
	return s.dirty.Swap(false)
}

// BlinkOn reports the current blink phase.
func (s *Scheduler) BlinkOn() bool {
	return s.blinkOn
}

// ResetBlink forces the cursor visible and restarts its clock. Called on
// keyboard input so the cursor never blinks away mid-typing.
func (s *Scheduler) ResetBlink(now time.Time) {
	if !s.blinkOn {
		s.dirty.Store(true)
	}
	s.blinkOn = true
	s.lastFlip = now
}

// Advance flips the blink phase when its half-period has elapsed. Only a
// flip dirties the frame, so an idle terminal redraws twice per second
// and no more.
func (s *Scheduler) Advance(now time.Time) {
	if now.Sub(s.lastFlip) < s.interval {
		return
	}
	s.blinkOn = !s.blinkOn
	s.lastFlip = now
	s.dirty.Store(true)
}

// NextDeadline returns how long the event loop may sleep before the next
// blink flip is due.
func (s *Scheduler) NextDeadline(now time.Time) time.Duration {
	d := s.interval - now.Sub(s.lastFlip)
	if d < 0 {
		return 0
	}
	return d
}
