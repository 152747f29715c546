package events

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestPostAndDrain(t *testing.T) {
	woke := 0
	p := NewProxy(func() { woke++ })

	p.Post(Event{Kind: Bell, PaneID: 3})
	p.Post(Event{Kind: TitleChanged, PaneID: 3, Title: "vim"})

	got := p.Drain()
	if len(got) != 2 {
		t.Fatalf("drained %d events, want 2", len(got))
	}
	if got[0].Kind != Bell || got[0].PaneID != 3 {
		t.Errorf("first event = %+v", got[0])
	}
	if got[1].Kind != TitleChanged || got[1].Title != "vim" {
		t.Errorf("second event = %+v", got[1])
	}
	if woke != 2 {
		t.Errorf("wake fired %d times, want 2", woke)
	}
	if p.Drain() != nil {
		t.Error("second drain not empty")
	}
}

func TestPostNeverBlocks(t *testing.T) {
	p := NewProxy(nil)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10000; i++ {
			p.Post(Event{Kind: Wakeup})
		}
	}()
	<-done
	if got := len(p.Drain()); got == 0 {
		t.Error("all events dropped")
	}
}

func TestWakeupCoalesces(t *testing.T) {
	p := NewProxy(nil)
	for i := 0; i < 300; i++ {
		p.Post(Event{Kind: Wakeup})
	}
	got := p.Drain()
	if len(got) != 1 || got[0].Kind != Wakeup {
		t.Fatalf("drained %d events, want a single Wakeup", len(got))
	}
}

// A pane flooding output posts one Wakeup per read chunk; the single
// PaneExited that follows when the process dies must still come through.
func TestPayloadSurvivesWakeupFlood(t *testing.T) {
	p := NewProxy(nil)
	for i := 0; i < 300; i++ {
		p.Post(Event{Kind: Wakeup})
	}
	p.Post(Event{Kind: PaneExited, PaneID: 7})
	p.Post(Event{Kind: TitleChanged, PaneID: 7, Title: "done"})

	var exited, titled bool
	for _, e := range p.Drain() {
		switch e.Kind {
		case PaneExited:
			exited = e.PaneID == 7
		case TitleChanged:
			titled = e.Title == "done"
		}
	}
	if !exited {
		t.Error("PaneExited lost")
	}
	if !titled {
		t.Error("TitleChanged lost")
	}
}

func TestConcurrentProducers(t *testing.T) {
	var wakes atomic.Int64
	p := NewProxy(func() { wakes.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				p.Post(Event{Kind: Bell, PaneID: id})
			}
		}(i)
	}
	wg.Wait()

	if got := len(p.Drain()); got != 160 {
		t.Errorf("drained %d events, want 160", got)
	}
	if wakes.Load() != 160 {
		t.Errorf("wakes = %d, want 160", wakes.Load())
	}
}
