package pressable

import (
	"testing"
	"time"

	"github.com/go-drift/pressable/pkg/graphics"
	"github.com/go-drift/pressable/pkg/style"
	drifttest "github.com/go-drift/pressable/pkg/testing"
)

func TestUnderlayController_ScheduleHideRestartsWindow(t *testing.T) {
	h := drifttest.NewHarness(t)
	var applied []style.Style
	u := NewUnderlayController(func(p style.Style) { applied = append(applied, p) })
	restore := style.Style{BackgroundColor: style.ColorPtr(graphics.ColorTransparent)}

	u.Show(graphics.ColorWhite)
	u.ScheduleHide(100*time.Millisecond, restore)
	h.Advance(60 * time.Millisecond)
	u.ScheduleHide(100*time.Millisecond, restore)
	h.Advance(99 * time.Millisecond)
	if !u.Visible() || !u.Pending() {
		t.Fatal("hide fired before the restarted window elapsed")
	}
	h.Advance(time.Millisecond)

	if u.Visible() || u.Pending() {
		t.Error("expected underlay hidden with no pending timer")
	}
	if len(applied) != 2 {
		t.Errorf("applied = %v, want show then one restore", applied)
	}
}

func TestUnderlayController_CancelKeepsVisibility(t *testing.T) {
	h := drifttest.NewHarness(t)
	calls := 0
	u := NewUnderlayController(func(style.Style) { calls++ })

	u.Show(graphics.ColorBlack)
	u.ScheduleHide(10*time.Millisecond, style.Style{})
	u.Cancel()
	h.Advance(50 * time.Millisecond)

	if !u.Visible() {
		t.Error("Cancel should not change visibility")
	}
	if calls != 1 {
		t.Errorf("apply calls = %d, want 1", calls)
	}
}

func TestUnderlayController_ShowSameColorIsNoop(t *testing.T) {
	drifttest.NewHarness(t)
	calls := 0
	u := NewUnderlayController(func(style.Style) { calls++ })

	u.Show(graphics.ColorBlack)
	u.Show(graphics.ColorBlack)
	u.Show(graphics.ColorWhite)

	if calls != 2 {
		t.Errorf("apply calls = %d, want 2", calls)
	}
}

func TestUnderlayController_HideRestoresNow(t *testing.T) {
	h := drifttest.NewHarness(t)
	var applied []style.Style
	u := NewUnderlayController(func(p style.Style) { applied = append(applied, p) })
	restore := style.Style{BackgroundColor: style.ColorPtr(graphics.ColorTransparent)}

	u.Hide(restore)
	if len(applied) != 0 {
		t.Fatalf("Hide applied %v with nothing showing", applied)
	}

	u.Show(graphics.ColorWhite)
	u.ScheduleHide(100*time.Millisecond, restore)
	u.Hide(restore)
	h.Advance(200 * time.Millisecond)

	if u.Visible() || u.Pending() {
		t.Error("expected underlay hidden with no pending timer")
	}
	if len(applied) != 2 {
		t.Errorf("applied = %v, want show then one restore", applied)
	}
}
