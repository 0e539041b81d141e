// Package theme holds the tunable timing and appearance defaults for
// pressable controls.
package theme

import (
	"time"

	"github.com/go-drift/pressable/pkg/animation"
	"github.com/go-drift/pressable/pkg/graphics"
)

// PressableThemeData defines the feedback timing and defaults shared by
// pressable controls.
type PressableThemeData struct {
	// ActiveOpacity is the opacity while pressed when a control sets none.
	ActiveOpacity float64
	// PressInDuration is the fade to ActiveOpacity on grant.
	PressInDuration time.Duration
	// PressOutDuration is the fade back to the resting opacity on release.
	PressOutDuration time.Duration
	// PressOutCurve eases the press-out fade.
	PressOutCurve func(float64) float64
	// UnderlayHideDelay is the debounce window before the underlay clears.
	UnderlayHideDelay time.Duration
	// UnderlayColor is used when a control enables the underlay without a
	// color of its own. Zero means no default underlay.
	UnderlayColor graphics.Color
	// LongPressDelay is how long a press must be held to be a long press.
	LongPressDelay time.Duration
	// LongPressAllowedMovement is the travel that abandons a long press.
	LongPressAllowedMovement float64
	// PressRegionInset enlarges the pressable region beyond the bounds.
	PressRegionInset graphics.EdgeInsets
}

// DefaultPressableTheme returns the stock pressable tuning: instant press-in,
// a 250ms eased press-out, a 100ms underlay debounce and a 20ms long press.
// The region inset is larger at the bottom to favor thumb reach.
func DefaultPressableTheme() PressableThemeData {
	return PressableThemeData{
		ActiveOpacity:            0.2,
		PressInDuration:          0,
		PressOutDuration:         250 * time.Millisecond,
		PressOutCurve:            animation.EaseOut,
		UnderlayHideDelay:        100 * time.Millisecond,
		LongPressDelay:           20 * time.Millisecond,
		LongPressAllowedMovement: 10,
		PressRegionInset:         graphics.EdgeInsets{Top: 20, Left: 20, Right: 20, Bottom: 100},
	}
}
