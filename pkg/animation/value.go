package animation

import "time"

// Value is a single animated float.
//
// The current value is always readable synchronously through Get. AnimateTo
// starts a run from wherever the value currently sits; a new run cancels the
// previous one (last writer wins, runs are never queued or blended).
//
// Listeners are notified only when the value actually changes.
type Value struct {
	current        float64
	run            *Run
	listeners      map[int]func(float64)
	nextListenerID int
}

// NewValue creates a value holding initial.
func NewValue(initial float64) *Value {
	return &Value{
		current:   initial,
		listeners: make(map[int]func(float64)),
	}
}

// Get returns the current value.
func (v *Value) Get() float64 {
	return v.current
}

// SetImmediate cancels any running animation and jumps to value.
func (v *Value) SetImmediate(value float64) {
	v.Stop()
	v.set(value)
}

// AnimateTo interpolates from the current value to target over duration.
// A nil curve means linear. A non-positive duration applies the target
// before returning.
func (v *Value) AnimateTo(target float64, duration time.Duration, curve func(float64) float64) *Run {
	v.Stop()

	run := &Run{
		value:    v,
		from:     v.current,
		to:       target,
		duration: duration,
		curve:    curve,
	}
	if duration <= 0 {
		run.finished = true
		v.set(target)
		return run
	}

	v.run = run
	run.ticker = NewTicker(run.tick)
	run.ticker.Start()
	return run
}

// Stop halts the running animation, leaving the value where it is.
func (v *Value) Stop() {
	if v.run != nil {
		v.run.Cancel()
	}
}

// IsAnimating reports whether a run is in flight.
func (v *Value) IsAnimating() bool {
	return v.run != nil
}

// Target returns the destination of the in-flight run, or the current value
// when idle.
func (v *Value) Target() float64 {
	if v.run != nil {
		return v.run.to
	}
	return v.current
}

// AddListener registers fn to be called with each new value.
// Returns an unsubscribe function.
func (v *Value) AddListener(fn func(float64)) func() {
	id := v.nextListenerID
	v.nextListenerID++
	v.listeners[id] = fn
	return func() {
		delete(v.listeners, id)
	}
}

// Dispose stops the animation and drops all listeners.
func (v *Value) Dispose() {
	v.Stop()
	v.listeners = make(map[int]func(float64))
}

func (v *Value) set(value float64) {
	if v.current == value {
		return
	}
	v.current = value
	for _, listener := range v.listeners {
		listener(value)
	}
}

// Run is a handle to one animation started by [Value.AnimateTo].
type Run struct {
	value     *Value
	from, to  float64
	duration  time.Duration
	curve     func(float64) float64
	ticker    *Ticker
	finished  bool
	cancelled bool
}

func (r *Run) tick(elapsed time.Duration) {
	progress := float64(elapsed) / float64(r.duration)
	if progress >= 1 {
		r.ticker.Stop()
		r.finished = true
		r.value.run = nil
		r.value.set(r.to)
		return
	}

	eased := progress
	if r.curve != nil {
		eased = r.curve(progress)
	}
	r.value.set(r.from + (r.to-r.from)*eased)
}

// Cancel stops this run if it is still in flight. Cancelling a superseded or
// finished run has no effect.
func (r *Run) Cancel() {
	if r == nil || r.finished || r.cancelled {
		return
	}
	r.cancelled = true
	if r.ticker != nil {
		r.ticker.Stop()
	}
	if r.value.run == r {
		r.value.run = nil
	}
}

// Done reports whether the run reached its target.
func (r *Run) Done() bool {
	return r != nil && r.finished
}

// Cancelled reports whether the run was stopped or superseded before finishing.
func (r *Run) Cancelled() bool {
	return r != nil && r.cancelled
}
