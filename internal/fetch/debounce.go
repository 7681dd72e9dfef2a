package fetch

import (
	"sync"
	"time"
)

// Debouncer holds a single pending timer. Each Trigger cancels the previous
// one, so only the last triggered function runs once input pauses for the
// configured delay.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

func (debouncer *Debouncer) Trigger(fn func()) {
	debouncer.mu.Lock()
	defer debouncer.mu.Unlock()

	if debouncer.timer != nil {
		debouncer.timer.Stop()
	}

	debouncer.timer = time.AfterFunc(debouncer.delay, fn)
}

// Stop cancels the pending invocation, if any.
func (debouncer *Debouncer) Stop() {
	debouncer.mu.Lock()
	defer debouncer.mu.Unlock()

	if debouncer.timer != nil {
		debouncer.timer.Stop()
		debouncer.timer = nil
	}
}
