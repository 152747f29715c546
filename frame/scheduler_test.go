package frame

import (
	"sync"
	"testing"
	"time"
)

func TestShouldRenderConsumesFlag(t *testing.T) {
	s := NewScheduler()
	if !s.ShouldRender() {
		t.Fatal("new scheduler owes an initial frame")
	}
	if s.ShouldRender() {
		t.Fatal("flag not consumed")
	}
	s.MarkDirty()
	s.MarkDirty()
	if !s.ShouldRender() {
		t.Fatal("dirty flag lost")
	}
	if s.ShouldRender() {
		t.Fatal("coalesced marks yielded two frames")
	}
}

func TestBlinkFlipsOnlyAfterHalfPeriod(t *testing.T) {
	s := NewScheduler()
	s.ShouldRender()
	start := time.Now()

	s.Advance(start.Add(100 * time.Millisecond))
	if s.ShouldRender() {
		t.Error("frame scheduled before blink period elapsed")
	}
	if !s.BlinkOn() {
		t.Error("blink phase flipped early")
	}

	s.Advance(start.Add(BlinkInterval + time.Millisecond))
	if s.BlinkOn() {
		t.Error("blink phase did not flip")
	}
	if !s.ShouldRender() {
		t.Error("phase flip did not schedule a frame")
	}

	// Next flip needs a full half-period again.
	s.Advance(start.Add(BlinkInterval + 2*time.Millisecond))
	if s.ShouldRender() {
		t.Error("second flip happened immediately")
	}
}

func TestResetBlinkForcesVisible(t *testing.T) {
	s := NewScheduler()
	s.ShouldRender()
	start := time.Now()

	s.Advance(start.Add(BlinkInterval + time.Millisecond))
	s.ShouldRender()
	if s.BlinkOn() {
		t.Fatal("setup: cursor should be hidden")
	}

	now := start.Add(BlinkInterval + 10*time.Millisecond)
	s.ResetBlink(now)
	if !s.BlinkOn() {
		t.Error("ResetBlink did not show the cursor")
	}
	if !s.ShouldRender() {
		t.Error("phase change on reset did not schedule a frame")
	}

	// Reset while already visible changes nothing visible.
	s.ResetBlink(now.Add(time.Millisecond))
	if s.ShouldRender() {
		t.Error("redundant reset scheduled a frame")
	}
}

func TestNextDeadlineCountsDown(t *testing.T) {
	s := NewScheduler()
	start := time.Now()
	s.ResetBlink(start)

	d := s.NextDeadline(start.Add(100 * time.Millisecond))
	if d <= 0 || d > BlinkInterval {
		t.Errorf("deadline = %v", d)
	}
	if got := s.NextDeadline(start.Add(2 * BlinkInterval)); got != 0 {
		t.Errorf("overdue deadline = %v, want 0", got)
	}
}

func TestMarkDirtyConcurrent(t *testing.T) {
	s := NewScheduler()
	s.ShouldRender()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s.MarkDirty()
			}
		}()
	}
	wg.Wait()
	if !s.ShouldRender() {
		t.Fatal("concurrent marks lost")
	}
}
