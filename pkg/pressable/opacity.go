package pressable

import (
	"time"

	"github.com/go-drift/pressable/pkg/animation"
)

// OpacityAnimator drives a control's opacity. It owns the value cell; the
// surface only observes it through Subscribe.
type OpacityAnimator struct {
	value *animation.Value
}

// NewOpacityAnimator creates an animator resting at initial.
func NewOpacityAnimator(initial float64) *OpacityAnimator {
	return &OpacityAnimator{value: animation.NewValue(initial)}
}

// AnimateTo moves toward target over d, superseding any run in flight. A nil
// curve is linear.
func (a *OpacityAnimator) AnimateTo(target float64, d time.Duration, curve func(float64) float64) *animation.Run {
	return a.value.AnimateTo(target, d, curve)
}

// SetImmediate jumps to v.
func (a *OpacityAnimator) SetImmediate(v float64) {
	a.value.SetImmediate(v)
}

// Value returns the current opacity.
func (a *OpacityAnimator) Value() float64 {
	return a.value.Get()
}

// Target returns where the animator is heading, or the current opacity when
// idle.
func (a *OpacityAnimator) Target() float64 {
	return a.value.Target()
}

// Subscribe calls fn with every new opacity. Returns an unsubscribe function.
func (a *OpacityAnimator) Subscribe(fn func(opacity float64)) func() {
	return a.value.AddListener(fn)
}

// Stop halts any run in flight.
func (a *OpacityAnimator) Stop() {
	a.value.Stop()
}

// Dispose stops the animator and drops all subscribers.
func (a *OpacityAnimator) Dispose() {
	a.value.Dispose()
}
