package testing

import (
	"testing"
	"time"

	"github.com/go-drift/pressable/pkg/animation"
)

// DefaultFrameInterval is the frame step used by a new Harness. One
// millisecond keeps timer deadlines exact in tests.
const DefaultFrameInterval = time.Millisecond

// Harness installs a FakeClock as the animation clock and steps frames.
//
// Timers and animations only progress inside [animation.StepTickers], so
// tests move time with Advance rather than with the clock directly.
type Harness struct {
	// Clock is the installed fake clock.
	Clock *FakeClock
	// FrameInterval is the time between stepped frames.
	FrameInterval time.Duration

	prevClock animation.Clock
	start     time.Time
}

// NewHarness creates a harness and restores global state via t.Cleanup.
func NewHarness(t testing.TB) *Harness {
	h := NewHarnessNoCleanup()
	t.Cleanup(h.Close)
	return h
}

// NewHarnessNoCleanup creates a harness for callers without a testing.TB,
// such as the replay tool. Call Close when done.
func NewHarnessNoCleanup() *Harness {
	clk := NewFakeClock()
	animation.ResetTickers()
	return &Harness{
		Clock:         clk,
		FrameInterval: DefaultFrameInterval,
		prevClock:     animation.SetClock(clk),
		start:         clk.Now(),
	}
}

// Close stops leftover tickers and restores the previous animation clock.
func (h *Harness) Close() {
	animation.ResetTickers()
	animation.SetClock(h.prevClock)
}

// Advance moves time forward by d, stepping a frame every FrameInterval.
func (h *Harness) Advance(d time.Duration) {
	interval := h.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	for d > 0 {
		step := min(interval, d)
		h.Clock.Advance(step)
		animation.StepTickers()
		d -= step
	}
}

// AdvanceTo moves time forward until Elapsed equals at. It never goes back.
func (h *Harness) AdvanceTo(at time.Duration) {
	if remaining := at - h.Elapsed(); remaining > 0 {
		h.Advance(remaining)
	}
}

// Pump steps one frame without moving time.
func (h *Harness) Pump() {
	animation.StepTickers()
}

// Settle advances until no tickers are active or limit is reached.
// It reports whether everything settled.
func (h *Harness) Settle(limit time.Duration) bool {
	deadline := h.Elapsed() + limit
	for animation.HasActiveTickers() {
		if h.Elapsed() >= deadline {
			return false
		}
		h.Advance(h.FrameInterval)
	}
	return true
}

// Now returns the fake time.
func (h *Harness) Now() time.Time {
	return h.Clock.Now()
}

// Elapsed returns the time since the harness was created.
func (h *Harness) Elapsed() time.Duration {
	return h.Clock.Now().Sub(h.start)
}
