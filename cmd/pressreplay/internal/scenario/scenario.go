// Package scenario loads scripted gesture sequences and replays them against
// a pressable controller on a fake clock.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/pressable/pkg/gestures"
	"github.com/go-drift/pressable/pkg/graphics"
	"github.com/go-drift/pressable/pkg/pressable"
	"github.com/go-drift/pressable/pkg/style"
)

// Event types understood by the replayer.
const (
	EventGrant     = "grant"
	EventMove      = "move"
	EventRelease   = "release"
	EventTerminate = "terminate"
	EventUnmount   = "unmount"
	EventDisable   = "disable"
	EventEnable    = "enable"
)

var eventTypes = []string{EventGrant, EventMove, EventRelease, EventTerminate, EventUnmount, EventDisable, EventEnable}

// Handler names accepted in Control.Handlers.
const (
	HandlerPress     = "press"
	HandlerPressIn   = "pressIn"
	HandlerPressOut  = "pressOut"
	HandlerLongPress = "longPress"
)

var handlerNames = []string{HandlerPress, HandlerPressIn, HandlerPressOut, HandlerLongPress}

// Scenario is a parsed replay script.
type Scenario struct {
	Name    string
	Bounds  graphics.Rect
	Control Control
	Events  []Event
	// Until is how long the replay runs. It is at least the last event time.
	Until time.Duration
}

// Control describes the controller under test.
type Control struct {
	Disabled                bool
	ActiveOpacity           *float64
	UnderlayColor           *graphics.Color
	DisableOpacityAnimation bool
	Opacity                 *float64
	Background              *graphics.Color
	// Handlers lists the callbacks the control registers. Nil means all
	// four; an empty list means none.
	Handlers []string
}

// Event is one scripted gesture step.
type Event struct {
	At       time.Duration
	Type     string
	Position graphics.Offset
}

type scenarioFile struct {
	Name    string      `yaml:"name"`
	Bounds  *boundsFile `yaml:"bounds,omitempty"`
	Control controlFile `yaml:"control"`
	Events  []eventFile `yaml:"events"`
	Until   string      `yaml:"until,omitempty"`
}

type boundsFile struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type controlFile struct {
	Disabled                bool     `yaml:"disabled"`
	ActiveOpacity           *float64 `yaml:"activeOpacity,omitempty"`
	UnderlayColor           string   `yaml:"underlayColor,omitempty"`
	DisableOpacityAnimation bool     `yaml:"disableOpacityAnimation"`
	Opacity                 *float64 `yaml:"opacity,omitempty"`
	Background              string   `yaml:"background,omitempty"`
	Handlers                []string `yaml:"handlers,omitempty"`
}

type eventFile struct {
	At   string   `yaml:"at"`
	Type string   `yaml:"type"`
	X    *float64 `yaml:"x,omitempty"`
	Y    *float64 `yaml:"y,omitempty"`
}

// DefaultBounds is used when a scenario declares no bounds.
var DefaultBounds = graphics.RectFromLTWH(0, 0, 100, 40)

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML scenario. Events must be in time order. Events
// without coordinates reuse the previous position, starting at the center
// of the bounds.
func Parse(data []byte) (*Scenario, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	sc := &Scenario{Name: file.Name, Bounds: DefaultBounds}
	if b := file.Bounds; b != nil {
		sc.Bounds = graphics.RectFromLTWH(b.X, b.Y, b.Width, b.Height)
	}

	control, err := file.Control.resolve()
	if err != nil {
		return nil, err
	}
	sc.Control = control

	if len(file.Events) == 0 {
		return nil, errors.New("scenario has no events")
	}
	pos := sc.Bounds.Center()
	var last time.Duration
	for i, ef := range file.Events {
		at, err := time.ParseDuration(ef.At)
		if err != nil {
			return nil, fmt.Errorf("event %d: at: %w", i, err)
		}
		if at < last {
			return nil, fmt.Errorf("event %d: at %v is before the previous event (%v)", i, at, last)
		}
		last = at

		typ := strings.ToLower(strings.TrimSpace(ef.Type))
		if !slices.Contains(eventTypes, typ) {
			return nil, fmt.Errorf("event %d: unknown type %q", i, ef.Type)
		}
		if ef.X != nil {
			pos.X = *ef.X
		}
		if ef.Y != nil {
			pos.Y = *ef.Y
		}
		sc.Events = append(sc.Events, Event{At: at, Type: typ, Position: pos})
	}

	sc.Until = last
	if file.Until != "" {
		until, err := time.ParseDuration(file.Until)
		if err != nil {
			return nil, fmt.Errorf("until: %w", err)
		}
		sc.Until = max(until, last)
	}
	return sc, nil
}

func (c controlFile) resolve() (Control, error) {
	control := Control{
		Disabled:                c.Disabled,
		ActiveOpacity:           c.ActiveOpacity,
		DisableOpacityAnimation: c.DisableOpacityAnimation,
		Opacity:                 c.Opacity,
		Handlers:                c.Handlers,
	}
	if c.UnderlayColor != "" {
		color, err := graphics.ParseColor(c.UnderlayColor)
		if err != nil {
			return control, fmt.Errorf("control.underlayColor: %w", err)
		}
		control.UnderlayColor = &color
	}
	if c.Background != "" {
		color, err := graphics.ParseColor(c.Background)
		if err != nil {
			return control, fmt.Errorf("control.background: %w", err)
		}
		control.Background = &color
	}
	if control.Handlers == nil {
		control.Handlers = handlerNames
	}
	for _, h := range control.Handlers {
		if !slices.Contains(handlerNames, h) {
			return control, fmt.Errorf("control.handlers: unknown handler %q", h)
		}
	}
	return control, nil
}

// declaredStyle returns the control's declared style.
func (c Control) declaredStyle() style.Style {
	return style.Style{Opacity: c.Opacity, BackgroundColor: c.Background}
}

func (c Control) has(handler string) bool {
	return slices.Contains(c.Handlers, handler)
}

// config builds the controller config. on is invoked with the handler name
// whenever a configured handler fires.
func (c Control) config(on func(handler string)) pressable.Config {
	cfg := pressable.Config{
		Disabled:                     c.Disabled,
		ActiveOpacity:                c.ActiveOpacity,
		UnderlayColor:                c.UnderlayColor,
		DisableTouchOpacityAnimation: c.DisableOpacityAnimation,
		Style:                        []style.Style{c.declaredStyle()},
	}
	hook := func(name string) func(ev gestures.ResponderEvent) {
		if !c.has(name) {
			return nil
		}
		return func(gestures.ResponderEvent) { on(name) }
	}
	cfg.OnPress = hook(HandlerPress)
	cfg.OnPressIn = hook(HandlerPressIn)
	cfg.OnPressOut = hook(HandlerPressOut)
	cfg.OnLongPress = hook(HandlerLongPress)
	return cfg
}
