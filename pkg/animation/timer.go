package animation

import "time"

// Timer runs a callback once, on the first frame at or after its delay.
//
// A Timer is a [Ticker] that stops itself when it fires, so it only makes
// progress while the host steps frames. Stop cancels a pending timer; calling
// Stop after the timer fired is a no-op.
type Timer struct {
	ticker *Ticker
	delay  time.Duration
	fn     func()
	fired  bool
}

// NewTimer creates and starts a timer that calls fn after delay.
func NewTimer(delay time.Duration, fn func()) *Timer {
	t := &Timer{delay: delay, fn: fn}
	t.ticker = NewTicker(t.tick)
	t.ticker.Start()
	return t
}

func (t *Timer) tick(elapsed time.Duration) {
	if elapsed < t.delay {
		return
	}
	t.ticker.Stop()
	t.fired = true
	if t.fn != nil {
		t.fn()
	}
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (t *Timer) Stop() bool {
	if t == nil || !t.ticker.IsActive() {
		return false
	}
	t.ticker.Stop()
	return true
}

// Pending reports whether the timer has neither fired nor been stopped.
func (t *Timer) Pending() bool {
	return t != nil && t.ticker.IsActive()
}

// Fired reports whether the callback has run.
func (t *Timer) Fired() bool {
	return t != nil && t.fired
}
