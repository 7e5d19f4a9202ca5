package watch

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of change events into single rebuild requests.
//
// States: idle (no timer), pending (timer armed, deadline moves with each new
// event), rebuilding (the worker drains C; a burst during a rebuild queues at
// most one follow-up because C has capacity one).
type debouncer struct {
	mu     sync.Mutex
	timer  *time.Timer
	window time.Duration

	// C receives one value per coalesced burst.
	C chan struct{}
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window: window,
		C:      make(chan struct{}, 1),
	}
}

// Trigger notes one change event. The pending deadline is pushed back to the
// full window; a newer burst supersedes the old deadline before the rebuild
// fires.
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		select {
		case d.C <- struct{}{}:
		default:
		}
	})
}

// Stop cancels any pending trigger.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
