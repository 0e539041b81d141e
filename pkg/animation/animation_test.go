package animation

import (
	"math"
	"testing"
	"time"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

// useStepClock installs a manual clock and clears tickers for the test.
func useStepClock(t *testing.T) *stepClock {
	t.Helper()
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	ResetTickers()
	t.Cleanup(func() {
		ResetTickers()
		SetClock(prev)
	})
	return clk
}

// advance moves the clock forward one millisecond at a time, stepping tickers
// on every frame.
func (c *stepClock) advance(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += time.Millisecond {
		c.now = c.now.Add(time.Millisecond)
		StepTickers()
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTimer_FiresAfterDelay(t *testing.T) {
	clk := useStepClock(t)

	fired := 0
	timer := NewTimer(100*time.Millisecond, func() { fired++ })

	clk.advance(99 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("timer fired early after 99ms")
	}
	if !timer.Pending() {
		t.Error("expected timer to be pending")
	}

	clk.advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if timer.Pending() || !timer.Fired() {
		t.Error("expected timer to be fired and not pending")
	}

	clk.advance(200 * time.Millisecond)
	if fired != 1 {
		t.Errorf("timer fired again: %d", fired)
	}
}

func TestTimer_Stop(t *testing.T) {
	clk := useStepClock(t)

	fired := false
	timer := NewTimer(10*time.Millisecond, func() { fired = true })
	if !timer.Stop() {
		t.Error("Stop on pending timer should report true")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}

	clk.advance(50 * time.Millisecond)
	if fired {
		t.Error("stopped timer fired")
	}
	if HasActiveTickers() {
		t.Error("expected no active tickers after stop")
	}
}

func TestTimer_NilStop(t *testing.T) {
	var timer *Timer
	if timer.Stop() || timer.Pending() || timer.Fired() {
		t.Error("nil timer should report false everywhere")
	}
}

func TestValue_ZeroDurationIsImmediate(t *testing.T) {
	useStepClock(t)

	v := NewValue(1)
	var seen []float64
	v.AddListener(func(x float64) { seen = append(seen, x) })

	run := v.AnimateTo(0.2, 0, nil)
	if v.Get() != 0.2 {
		t.Errorf("Get() = %v, want 0.2", v.Get())
	}
	if !run.Done() {
		t.Error("zero-duration run should be done")
	}
	if v.IsAnimating() {
		t.Error("zero-duration run should not leave an animation in flight")
	}
	if len(seen) != 1 || seen[0] != 0.2 {
		t.Errorf("listener saw %v, want [0.2]", seen)
	}
}

func TestValue_AnimateToConverges(t *testing.T) {
	clk := useStepClock(t)

	v := NewValue(0.2)
	run := v.AnimateTo(1, 250*time.Millisecond, nil)

	clk.advance(125 * time.Millisecond)
	if !approx(v.Get(), 0.6) {
		t.Errorf("midpoint = %v, want 0.6", v.Get())
	}
	if !v.IsAnimating() {
		t.Error("expected animation in flight at midpoint")
	}

	clk.advance(125 * time.Millisecond)
	if v.Get() != 1 {
		t.Errorf("final = %v, want 1", v.Get())
	}
	if !run.Done() || v.IsAnimating() {
		t.Error("expected run to be done")
	}
}

func TestValue_NewRunSupersedes(t *testing.T) {
	clk := useStepClock(t)

	v := NewValue(0)
	first := v.AnimateTo(1, 100*time.Millisecond, nil)
	clk.advance(50 * time.Millisecond)

	second := v.AnimateTo(0, 100*time.Millisecond, nil)
	if !first.Cancelled() {
		t.Error("first run should be cancelled")
	}
	if v.Target() != 0 {
		t.Errorf("Target() = %v, want 0", v.Target())
	}

	// The second run starts from the midpoint, not from the first run's target.
	clk.advance(50 * time.Millisecond)
	if !approx(v.Get(), 0.25) {
		t.Errorf("value = %v, want 0.25", v.Get())
	}
	clk.advance(50 * time.Millisecond)
	if v.Get() != 0 || !second.Done() {
		t.Errorf("value = %v done=%v, want 0 done", v.Get(), second.Done())
	}
}

func TestValue_SameTargetTwiceIsIdempotent(t *testing.T) {
	clk := useStepClock(t)

	once := NewValue(1)
	once.AnimateTo(0.5, 100*time.Millisecond, EaseOut)

	twice := NewValue(1)
	twice.AnimateTo(0.5, 100*time.Millisecond, EaseOut)
	twice.AnimateTo(0.5, 100*time.Millisecond, EaseOut)

	clk.advance(40 * time.Millisecond)
	if !approx(once.Get(), twice.Get()) {
		t.Errorf("mid values differ: %v vs %v", once.Get(), twice.Get())
	}
	clk.advance(100 * time.Millisecond)
	if once.Get() != twice.Get() || twice.Get() != 0.5 {
		t.Errorf("final values %v, %v, want 0.5", once.Get(), twice.Get())
	}
}

func TestValue_SetImmediateCancelsRun(t *testing.T) {
	clk := useStepClock(t)

	v := NewValue(0)
	run := v.AnimateTo(1, 100*time.Millisecond, nil)
	v.SetImmediate(0.9)
	clk.advance(200 * time.Millisecond)

	if v.Get() != 0.9 {
		t.Errorf("value = %v, want 0.9", v.Get())
	}
	if !run.Cancelled() {
		t.Error("run should be cancelled by SetImmediate")
	}
}

func TestValue_ListenerUnsubscribe(t *testing.T) {
	useStepClock(t)

	v := NewValue(0)
	calls := 0
	unsubscribe := v.AddListener(func(float64) { calls++ })
	v.SetImmediate(1)
	unsubscribe()
	v.SetImmediate(0)
	v.SetImmediate(0)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestStepTickers_StartOrder(t *testing.T) {
	clk := useStepClock(t)

	var order []string
	NewTimer(5*time.Millisecond, func() { order = append(order, "a") })
	NewTimer(5*time.Millisecond, func() { order = append(order, "b") })
	NewTimer(5*time.Millisecond, func() { order = append(order, "c") })

	clk.advance(5 * time.Millisecond)
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("order = %v, want [a b c]", order)
	}
}

func TestCurveByName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"linear", true},
		{"ease", true},
		{"Ease-Out", true},
		{"ease-in-out", true},
		{"bounce", false},
	}
	for _, tt := range tests {
		curve, ok := CurveByName(tt.name)
		if ok != tt.ok {
			t.Errorf("CurveByName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && (curve(0) != 0 || curve(1) != 1) {
			t.Errorf("CurveByName(%q) endpoints = %v, %v", tt.name, curve(0), curve(1))
		}
	}
}
