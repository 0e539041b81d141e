package pressable

import (
	"time"

	"github.com/go-drift/pressable/pkg/animation"
	"github.com/go-drift/pressable/pkg/graphics"
	"github.com/go-drift/pressable/pkg/style"
)

// UnderlayController shows a background color while a control is pressed
// and hides it after a debounce window.
//
// At most one hide timer is pending. Show and ScheduleHide both replace it,
// so a quick release followed by a new press keeps the underlay up without
// flicker.
type UnderlayController struct {
	apply   func(style.Style)
	timer   *animation.Timer
	visible bool
	color   graphics.Color
}

// NewUnderlayController creates a controller that writes through apply.
func NewUnderlayController(apply func(patch style.Style)) *UnderlayController {
	return &UnderlayController{apply: apply}
}

// Show cancels any pending hide and applies color.
func (u *UnderlayController) Show(color graphics.Color) {
	u.Cancel()
	if u.visible && u.color == color {
		return
	}
	u.visible = true
	u.color = color
	u.apply(style.Style{BackgroundColor: style.ColorPtr(color)})
}

// ScheduleHide restores the surface to restore after the given delay,
// restarting the window if a hide is already pending.
func (u *UnderlayController) ScheduleHide(after time.Duration, restore style.Style) {
	u.Cancel()
	u.timer = animation.NewTimer(after, func() {
		u.timer = nil
		u.visible = false
		u.apply(restore)
	})
}

// Hide drops any pending hide and restores the surface now. It does nothing
// when the underlay is not showing.
func (u *UnderlayController) Hide(restore style.Style) {
	u.Cancel()
	if !u.visible {
		return
	}
	u.visible = false
	u.apply(restore)
}

// Cancel drops the pending hide, if any, leaving visibility unchanged.
func (u *UnderlayController) Cancel() {
	if u.timer != nil {
		u.timer.Stop()
		u.timer = nil
	}
}

// Visible reports whether the underlay color is currently applied.
func (u *UnderlayController) Visible() bool {
	return u.visible
}

// Pending reports whether a hide is scheduled.
func (u *UnderlayController) Pending() bool {
	return u.timer.Pending()
}
