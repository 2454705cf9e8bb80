package session

import (
	"sync"
	"time"
)

// repeater fires fn once after delay, then every interval, until stopped.
// Once Stop returns fn is not running and will not run again.
type repeater struct {
	mu       sync.Mutex
	delay    time.Duration
	interval time.Duration
	timer    *time.Timer
	done     chan struct{}
	stopped  chan struct{}
}

func newRepeater(delay, interval time.Duration) *repeater {
	return &repeater{delay: delay, interval: interval}
}

func (r *repeater) Start(fn func()) {
	r.Stop()

	r.mu.Lock()
	defer r.mu.Unlock()

	done := make(chan struct{})
	stopped := make(chan struct{})
	r.done = done
	r.stopped = stopped

	fire := func() bool {
		select {
		case <-done:
			return false
		default:
		}
		fn()
		return true
	}

	r.timer = time.AfterFunc(r.delay, func() {
		defer close(stopped)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		if !fire() {
			return
		}
		for {
			select {
			case <-ticker.C:
				if !fire() {
					return
				}
			case <-done:
				return
			}
		}
	})
}

// Stop cancels both stages and waits for a running fn to finish. Safe to
// call when nothing is running. Must not be called from fn.
func (r *repeater) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done == nil {
		return
	}
	close(r.done)
	if !r.timer.Stop() {
		<-r.stopped
	}
	r.timer = nil
	r.done = nil
	r.stopped = nil
}
