package console

import "time"

// Ticker fires at a fixed interval while active. It has no goroutine; the
// owner drives it from its own tick with Advance.
type Ticker struct {
	interval time.Duration
	active   bool
	next     time.Time
}

// NewTicker creates a stopped ticker
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// Start arms the ticker; the first fire is one interval after now.
func (t *Ticker) Start(now time.Time) {
	t.active = true
	t.next = now.Add(t.interval)
}

// Stop disarms the ticker
func (t *Ticker) Stop() {
	t.active = false
}

// Active reports whether the ticker is armed
func (t *Ticker) Active() bool { return t.active }

// Advance reports whether the interval elapsed by now. A late tick fires once
// and reschedules from now rather than catching up on missed intervals.
func (t *Ticker) Advance(now time.Time) bool {
	if !t.active || now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}
