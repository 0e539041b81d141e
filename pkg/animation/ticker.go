// Package animation provides the timing primitives the pressable core runs on:
// a swappable clock, frame-stepped tickers, one-shot timers and a single
// animated float value.
//
// # Frame Model
//
// Nothing in this package owns a goroutine. The host calls [StepTickers] once
// per frame on the UI thread; every active [Ticker] is advanced in the order it
// was started. Timers and value animations are tickers underneath, so all
// timer callbacks and animated value changes happen on the UI thread inside
// StepTickers.
//
// # Basic Usage
//
//	opacity := animation.NewValue(1)
//	unsubscribe := opacity.AddListener(func(v float64) {
//	    surface.SetNativeProps(style.Style{Opacity: style.Float(v)})
//	})
//	opacity.AnimateTo(0.2, 0, nil)                        // instant
//	opacity.AnimateTo(1, 250*time.Millisecond, animation.EaseOut)
//
//	hide := animation.NewTimer(100*time.Millisecond, clearUnderlay)
//	hide.Stop() // cancel before it fires
//
// Tests replace the clock with [SetClock] and drive frames explicitly.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers []*Ticker
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [Value] and [Timer].
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker. Elapsed time is measured from this call.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers = append(activeTickers, t)
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	for i, active := range activeTickers {
		if active == t {
			activeTickers = append(activeTickers[:i], activeTickers[i+1:]...)
			break
		}
	}
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// StepTickers advances all active tickers in start order.
// This should be called once per frame from the host's frame loop.
// Tickers started by a callback during this step first run on the next step.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	tickers := make([]*Ticker, len(activeTickers))
	copy(tickers, activeTickers)
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		// A callback earlier in this step may have stopped it.
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

// ResetTickers stops every active ticker. Test harnesses call it between
// cases so a leaked ticker cannot fire into the next test.
func ResetTickers() {
	tickerMu.Lock()
	tickers := activeTickers
	activeTickers = nil
	tickerMu.Unlock()
	for _, t := range tickers {
		t.isActive = false
	}
}
