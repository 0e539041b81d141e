// Package pressable implements the interaction core of a pressable control:
// turning a responder stream into press callbacks plus opacity and underlay
// feedback.
//
// A Controller is driven by a [gestures.Responder] (it implements
// [gestures.Handler]) and writes visual feedback to a [Surface] through
// SetNativeProps. All work happens on the UI thread; timers and animations
// advance when the host calls [animation.StepTickers] each frame.
package pressable

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-drift/pressable/pkg/animation"
	"github.com/go-drift/pressable/pkg/errors"
	"github.com/go-drift/pressable/pkg/focus"
	"github.com/go-drift/pressable/pkg/gestures"
	"github.com/go-drift/pressable/pkg/graphics"
	"github.com/go-drift/pressable/pkg/instrumentation"
	"github.com/go-drift/pressable/pkg/semantics"
	"github.com/go-drift/pressable/pkg/style"
	"github.com/go-drift/pressable/pkg/theme"
)

// Option configures a Controller.
type Option func(*Controller)

// WithTheme overrides the default timing and opacity tuning.
func WithTheme(t theme.PressableThemeData) Option {
	return func(c *Controller) {
		c.theme = t
	}
}

// WithFocus routes Focus calls through manager for node.
func WithFocus(manager *focus.FocusManager, node *focus.FocusNode) Option {
	return func(c *Controller) {
		c.focusManager = manager
		c.focusNode = node
	}
}

// WithLatencySink records a sample for every completed tap.
func WithLatencySink(sink instrumentation.LatencySink) Option {
	return func(c *Controller) {
		if sink != nil {
			c.latency = sink
		}
	}
}

// WithLogger sets the controller's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSemantics forwards accessibility metadata for nodeID to adapter.
func WithSemantics(adapter semantics.Adapter, nodeID int64) Option {
	return func(c *Controller) {
		c.semantics = adapter
		c.nodeID = nodeID
	}
}

// WithRecognizer injects the press recognizer. It is bound to the new
// controller, so a recognizer can serve only one controller.
func WithRecognizer(r *gestures.PressRecognizer) Option {
	return func(c *Controller) {
		c.recognizer = r
	}
}

// WithName labels the controller in logs and latency samples.
func WithName(name string) Option {
	return func(c *Controller) {
		c.name = name
	}
}

// Controller orchestrates one pressable control.
//
// Visual feedback is applied only while the controller is mounted, has a
// surface, and has at least one press handler. Within a transition the
// pending underlay hide is cancelled first, then the visual is applied, then
// the callback runs, so callbacks observe the updated surface.
type Controller struct {
	cfg          Config
	theme        theme.PressableThemeData
	recognizer   *gestures.PressRecognizer
	opacity      *OpacityAnimator
	underlay     *UnderlayController
	focusManager *focus.FocusManager
	focusNode    *focus.FocusNode
	semantics    semantics.Adapter
	nodeID       int64
	latency      instrumentation.LatencySink
	logger       *slog.Logger
	name         string

	key         visualKey
	mounted     bool
	surface     Surface
	unsubscribe func()
}

// New creates a controller for cfg. It panics with an
// [*errors.CompositionError] if an injected recognizer is already bound.
func New(cfg Config, opts ...Option) *Controller {
	c := &Controller{
		theme:   theme.DefaultPressableTheme(),
		latency: instrumentation.Discard,
		logger:  slog.Default(),
		name:    "pressable",
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.recognizer == nil {
		c.recognizer = gestures.NewPressRecognizer()
	}
	c.recognizer.AllowedMovement = c.theme.LongPressAllowedMovement
	c.recognizer.Bind(c, c, c.bounds)

	if cfg.Nested {
		c.logger.Warn("nested pressable controls are not supported", "control", c.name)
	}
	c.cfg = cfg
	c.validate()
	c.key = cfg.visualKey()
	c.opacity = NewOpacityAnimator(c.key.resting)
	c.underlay = NewUnderlayController(c.applyStyle)
	return c
}

// Mount attaches the controller to surface. A nil surface mounts without
// visual feedback until SetSurface provides one.
func (c *Controller) Mount(surface Surface) {
	if c.mounted {
		c.Unmount()
	}
	c.mounted = true
	c.surface = surface
	c.underlay = NewUnderlayController(c.applyStyle)
	c.unsubscribe = c.opacity.Subscribe(func(v float64) {
		c.applyStyle(style.Style{Opacity: style.Float(v)})
	})
	c.opacity.SetImmediate(c.key.resting)
	c.applyStyle(style.Style{Opacity: style.Float(c.opacity.Value())})
	c.forwardSemantics()
	c.logger.Debug("pressable mounted", "control", c.name, "surface", surface != nil)
}

// SetSurface replaces the surface reference. Nil detaches it. A surface
// attached while mounted receives the current opacity.
func (c *Controller) SetSurface(surface Surface) {
	c.surface = surface
	c.applyStyle(style.Style{Opacity: style.Float(c.opacity.Value())})
}

// Unmount tears the controller down. The gesture is dropped first, then the
// pending underlay hide and the opacity run are cancelled, so no timer can
// touch the detached surface.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.recognizer.Reset()
	c.underlay.Cancel()
	c.opacity.Stop()
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	if c.focusManager != nil && c.focusNode != nil {
		c.focusManager.Unfocus(c.focusNode)
	}
	c.mounted = false
	c.surface = nil
	c.logger.Debug("pressable unmounted", "control", c.name)
}

// Dispose unmounts the controller and releases its recognizer and opacity
// animator. The controller must not be used afterwards.
func (c *Controller) Dispose() {
	c.Unmount()
	c.recognizer.Dispose()
	c.opacity.Dispose()
}

// Mounted reports whether the controller is mounted.
func (c *Controller) Mounted() bool {
	return c.mounted
}

// Update replaces the configuration. The opacity baseline is reset when the
// resting opacity changes or the disabled state flips. Disabling a control
// also clears its underlay, since no release will hide it.
func (c *Controller) Update(cfg Config) {
	prev := c.cfg
	c.cfg = cfg
	c.validate()

	if key := cfg.visualKey(); key != c.key {
		if key.disabled && !c.key.disabled {
			c.underlay.Hide(style.Style{BackgroundColor: style.ColorPtr(cfg.restoreBackground())})
		}
		c.key = key
		c.opacity.SetImmediate(key.resting)
	}
	if prev.Accessibility != cfg.Accessibility {
		c.forwardSemantics()
	}
}

// Config returns the current configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Recognizer returns the bound press recognizer.
func (c *Controller) Recognizer() *gestures.PressRecognizer {
	return c.recognizer
}

// RestingOpacity returns the cached idle opacity.
func (c *Controller) RestingOpacity() float64 {
	return c.key.resting
}

// Opacity returns the current animated opacity.
func (c *Controller) Opacity() float64 {
	return c.opacity.Value()
}

// OpacityTarget returns where the opacity is heading.
func (c *Controller) OpacityTarget() float64 {
	return c.opacity.Target()
}

// UnderlayVisible reports whether the underlay color is applied.
func (c *Controller) UnderlayVisible() bool {
	return c.underlay.Visible()
}

// Focus moves accessibility focus to the control.
func (c *Controller) Focus() {
	if c.focusManager == nil || c.focusNode == nil {
		return
	}
	c.focusManager.RequestFocus(c.focusNode)
}

// Blur does nothing. Platforms have no native notion of dropping
// accessibility focus.
func (c *Controller) Blur() {}

// SetNativeProps forwards patch to the surface. It is ignored while
// unmounted or detached.
func (c *Controller) SetNativeProps(patch style.Style) {
	c.applyStyle(patch)
}

// SetOpacityTo animates the opacity to value over d.
func (c *Controller) SetOpacityTo(value float64, d time.Duration) {
	c.opacity.AnimateTo(value, d, animation.EaseInOut)
}

// OnGrant implements [gestures.Handler].
func (c *Controller) OnGrant(ev gestures.ResponderEvent) {
	c.recognizer.Grant(ev)
}

// OnMove implements [gestures.Handler].
func (c *Controller) OnMove(ev gestures.ResponderEvent) {
	c.recognizer.Move(ev)
}

// OnRelease implements [gestures.Handler].
func (c *Controller) OnRelease(ev gestures.ResponderEvent) {
	c.recognizer.Release(ev)
}

// OnTerminate implements [gestures.Handler].
func (c *Controller) OnTerminate(ev gestures.ResponderEvent) {
	c.recognizer.Terminate(ev)
}

// OnTerminationRequest always lets another control take over the gesture.
func (c *Controller) OnTerminationRequest() bool {
	return true
}

// LongPressDelay implements [gestures.Handler].
func (c *Controller) LongPressDelay() time.Duration {
	return c.theme.LongPressDelay
}

// PressRegionInset implements [gestures.Handler].
func (c *Controller) PressRegionInset() graphics.EdgeInsets {
	return c.theme.PressRegionInset
}

// PressIn implements [gestures.PressDelegate].
func (c *Controller) PressIn(ev gestures.ResponderEvent) {
	if c.cfg.Disabled {
		return
	}
	if c.feedbackApplicable() {
		if color, ok := c.underlayColor(); ok {
			c.underlay.Show(color)
		}
		if !c.cfg.DisableTouchOpacityAnimation {
			c.opacity.AnimateTo(c.activeOpacity(), c.theme.PressInDuration, nil)
		}
	}
	if c.cfg.OnPressIn != nil {
		c.cfg.OnPressIn(ev)
	}
}

// PressOut implements [gestures.PressDelegate].
func (c *Controller) PressOut(ev gestures.ResponderEvent) {
	if c.cfg.Disabled {
		return
	}
	if c.feedbackApplicable() {
		if _, ok := c.underlayColor(); ok {
			restore := style.Style{BackgroundColor: style.ColorPtr(c.cfg.restoreBackground())}
			c.underlay.ScheduleHide(c.theme.UnderlayHideDelay, restore)
		}
		if !c.cfg.DisableTouchOpacityAnimation {
			c.opacity.AnimateTo(c.key.resting, c.theme.PressOutDuration, c.theme.PressOutCurve)
		}
	}
	if c.cfg.OnPressOut != nil {
		c.cfg.OnPressOut(ev)
	}
}

// Press implements [gestures.PressDelegate]. The latency sample is recorded
// before the handler runs so handler time is not counted.
func (c *Controller) Press(origin, ev gestures.ResponderEvent) {
	if c.cfg.Disabled {
		return
	}
	c.latency.RecordTap(context.Background(), instrumentation.Sample{
		Origin:      origin,
		CompletedAt: ev.Timestamp,
		Control:     c.name,
	})
	if c.cfg.OnPress != nil {
		c.cfg.OnPress(ev)
	}
}

// LongPress implements [gestures.PressDelegate].
func (c *Controller) LongPress(ev gestures.ResponderEvent) {
	if c.cfg.Disabled {
		return
	}
	if c.cfg.OnLongPress != nil {
		c.cfg.OnLongPress(ev)
	}
}

// HasLongPressHandler implements [gestures.PressDelegate].
func (c *Controller) HasLongPressHandler() bool {
	return !c.cfg.Disabled && c.cfg.OnLongPress != nil
}

func (c *Controller) feedbackApplicable() bool {
	return c.mounted && c.surface != nil && c.cfg.HasHandler()
}

func (c *Controller) applyStyle(patch style.Style) {
	if !c.mounted || c.surface == nil {
		return
	}
	c.surface.SetNativeProps(patch)
}

func (c *Controller) bounds() (graphics.Rect, bool) {
	if c.surface == nil {
		return graphics.Rect{}, false
	}
	return c.surface.Bounds()
}

func (c *Controller) activeOpacity() float64 {
	if c.cfg.ActiveOpacity != nil && validOpacity(*c.cfg.ActiveOpacity) {
		return *c.cfg.ActiveOpacity
	}
	return c.theme.ActiveOpacity
}

func (c *Controller) underlayColor() (graphics.Color, bool) {
	if c.cfg.UnderlayColor != nil {
		return *c.cfg.UnderlayColor, true
	}
	if c.theme.UnderlayColor != 0 {
		return c.theme.UnderlayColor, true
	}
	return 0, false
}

func (c *Controller) forwardSemantics() {
	if c.semantics == nil || !c.mounted {
		return
	}
	c.semantics.UpdateSemantics(c.nodeID, c.cfg.Accessibility)
}

// validate reports configuration mistakes. Invalid values fall back to the
// theme rather than failing the interaction.
func (c *Controller) validate() {
	if c.cfg.ActiveOpacity != nil && !validOpacity(*c.cfg.ActiveOpacity) {
		errors.Report(&errors.PressableError{
			Op:   "pressable.Controller",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("%s: activeOpacity %v outside [0, 1]", c.name, *c.cfg.ActiveOpacity),
		})
	}
}

func validOpacity(v float64) bool {
	return v >= 0 && v <= 1
}
