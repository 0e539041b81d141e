package pressable

import (
	"github.com/go-drift/pressable/pkg/gestures"
	"github.com/go-drift/pressable/pkg/graphics"
	"github.com/go-drift/pressable/pkg/semantics"
	"github.com/go-drift/pressable/pkg/style"
)

// Config is the declarative input for a pressable control. Treat it as an
// immutable snapshot: pass a new value to [Controller.Update] instead of
// mutating the one the controller holds.
//
// Example using struct literal:
//
//	pressable.Config{
//	    OnPress:       handleSubmit,
//	    UnderlayColor: style.ColorPtr(graphics.RGB(0xDD, 0xDD, 0xDD)),
//	    Style:         []style.Style{{Opacity: style.Float(0.9)}},
//	}
//
// Example using the fluent helpers:
//
//	pressable.ConfigOf(handleSubmit).
//	    WithActiveOpacity(0.5).
//	    WithDisabled(!isValid)
type Config struct {
	// Disabled suppresses every callback and all visual feedback. Gestures
	// are still accepted and silently absorbed.
	Disabled bool
	// ActiveOpacity is the opacity while pressed. Nil uses the theme value.
	ActiveOpacity *float64
	// UnderlayColor is shown behind the control while pressed. Nil disables
	// the underlay unless the theme supplies a color.
	UnderlayColor *graphics.Color
	// DisableTouchOpacityAnimation keeps the opacity fixed. The underlay is
	// unaffected.
	DisableTouchOpacityAnimation bool
	// Style is the declared style. Its flattened opacity is the resting
	// opacity and its background is restored when the underlay hides.
	Style []style.Style

	OnPress     func(ev gestures.ResponderEvent)
	OnPressIn   func(ev gestures.ResponderEvent)
	OnPressOut  func(ev gestures.ResponderEvent)
	OnLongPress func(ev gestures.ResponderEvent)

	// Accessibility is forwarded to the semantics adapter unchanged.
	Accessibility semantics.Properties
	// Nested marks a control placed inside another pressable control.
	Nested bool
}

// ConfigOf creates a config with the given press handler.
func ConfigOf(onPress func(ev gestures.ResponderEvent)) Config {
	return Config{OnPress: onPress}
}

// WithDisabled returns a copy of the config with the specified disabled state.
func (c Config) WithDisabled(disabled bool) Config {
	c.Disabled = disabled
	return c
}

// WithActiveOpacity returns a copy of the config with the pressed opacity set.
func (c Config) WithActiveOpacity(opacity float64) Config {
	c.ActiveOpacity = style.Float(opacity)
	return c
}

// WithUnderlayColor returns a copy of the config with an underlay color.
func (c Config) WithUnderlayColor(color graphics.Color) Config {
	c.UnderlayColor = style.ColorPtr(color)
	return c
}

// WithStyle returns a copy of the config with the declared style replaced.
func (c Config) WithStyle(styles ...style.Style) Config {
	c.Style = styles
	return c
}

// WithOnLongPress returns a copy of the config with a long-press handler.
func (c Config) WithOnLongPress(fn func(ev gestures.ResponderEvent)) Config {
	c.OnLongPress = fn
	return c
}

// HasHandler reports whether any of the four press handlers is set.
func (c Config) HasHandler() bool {
	return c.OnPress != nil || c.OnPressIn != nil || c.OnPressOut != nil || c.OnLongPress != nil
}

// RestingOpacity returns the flattened style opacity, 1 when unset.
func (c Config) RestingOpacity() float64 {
	return style.Flatten(c.Style...).OpacityOr(1)
}

// restoreBackground returns the declared background, transparent when unset.
func (c Config) restoreBackground() graphics.Color {
	return style.Flatten(c.Style...).BackgroundOr(graphics.ColorTransparent)
}

// visualKey is the comparable part of a Config that drives the opacity
// baseline. Handlers are funcs and cannot be compared.
type visualKey struct {
	resting  float64
	disabled bool
}

func (c Config) visualKey() visualKey {
	return visualKey{resting: c.RestingOpacity(), disabled: c.Disabled}
}
