package gestures

import (
	"time"

	"github.com/go-drift/pressable/pkg/animation"
	"github.com/go-drift/pressable/pkg/errors"
	"github.com/go-drift/pressable/pkg/graphics"
)

// DefaultLongPressAllowedMovement is how far a pointer may travel from the
// grant position before a pending long press is abandoned.
const DefaultLongPressAllowedMovement = 10.0

// PressState is the recognizer's view of the current gesture.
type PressState int

const (
	// PressIdle means no gesture is in progress.
	PressIdle PressState = iota
	// PressedIn means the pointer is down inside the pressable region.
	PressedIn
	// PressedOut means the pointer is down but has left the pressable region.
	PressedOut
)

func (s PressState) String() string {
	switch s {
	case PressedIn:
		return "pressed-in"
	case PressedOut:
		return "pressed-out"
	default:
		return "idle"
	}
}

// PressDelegate receives the semantic events produced by a [PressRecognizer].
type PressDelegate interface {
	// PressIn fires on grant and when the pointer re-enters the region.
	PressIn(ev ResponderEvent)
	// PressOut fires on release, termination, or leaving the region.
	PressOut(ev ResponderEvent)
	// Press fires for a completed tap. origin is the grant event.
	Press(origin, ev ResponderEvent)
	// LongPress fires once the press is held past the long-press delay.
	LongPress(ev ResponderEvent)
	// HasLongPressHandler reports whether long presses are consumed. When
	// true, a fired long press suppresses the tap on release.
	HasLongPressHandler() bool
}

// PressTiming supplies the recognizer's tunables. [Handler] satisfies it.
type PressTiming interface {
	LongPressDelay() time.Duration
	PressRegionInset() graphics.EdgeInsets
}

// BoundsFunc returns the control's current bounds. ok is false when the
// bounds are unknown, in which case every position counts as inside.
type BoundsFunc func() (bounds graphics.Rect, ok bool)

// PressRecognizer turns a responder stream into press semantics.
//
// A release inside the pressable region (bounds enlarged by
// PressRegionInset) is a tap. Holding for LongPressDelay without leaving the
// region or moving more than AllowedMovement is a long press. A long press
// supersedes the tap when the delegate has a long-press handler.
type PressRecognizer struct {
	// AllowedMovement is the travel that cancels a pending long press.
	AllowedMovement float64

	delegate       PressDelegate
	timing         PressTiming
	bounds         BoundsFunc
	state          PressState
	origin         ResponderEvent
	longPress      *animation.Timer
	longPressFired bool
}

// NewPressRecognizer creates an unbound recognizer. Call Bind before
// feeding it events.
func NewPressRecognizer() *PressRecognizer {
	return &PressRecognizer{AllowedMovement: DefaultLongPressAllowedMovement}
}

// Bind attaches the recognizer to the control it reports to. bounds may be
// nil. A recognizer serves exactly one control: binding it a second time
// panics with an [*errors.CompositionError].
func (p *PressRecognizer) Bind(delegate PressDelegate, timing PressTiming, bounds BoundsFunc) {
	errors.Compose("gestures.PressRecognizer", "delegate", p.delegate != nil)
	p.delegate = delegate
	p.timing = timing
	p.bounds = bounds
}

// State returns the current press state.
func (p *PressRecognizer) State() PressState {
	return p.state
}

// LongPressFired reports whether the current gesture produced a long press.
func (p *PressRecognizer) LongPressFired() bool {
	return p.longPressFired
}

// Grant starts a gesture.
func (p *PressRecognizer) Grant(ev ResponderEvent) {
	ev = stamp(ev)
	p.cancelLongPress()
	p.origin = ev
	p.state = PressedIn
	p.longPressFired = false
	p.longPress = animation.NewTimer(p.timing.LongPressDelay(), p.handleLongPress)
	p.delegate.PressIn(ev)
}

// Move tracks the pointer against the pressable region.
func (p *PressRecognizer) Move(ev ResponderEvent) {
	if p.state == PressIdle {
		return
	}
	ev = stamp(ev)
	if ev.Position.Distance(p.origin.Position) > p.AllowedMovement {
		p.cancelLongPress()
	}

	inside := p.inRegion(ev.Position)
	switch {
	case p.state == PressedIn && !inside:
		p.state = PressedOut
		p.cancelLongPress()
		p.delegate.PressOut(ev)
	case p.state == PressedOut && inside:
		p.state = PressedIn
		p.delegate.PressIn(ev)
	}
}

// Release ends the gesture, producing a tap when the pointer lifts inside
// the region.
func (p *PressRecognizer) Release(ev ResponderEvent) {
	if p.state == PressIdle {
		return
	}
	ev = stamp(ev)
	p.cancelLongPress()
	wasIn := p.state == PressedIn
	p.state = PressIdle
	if !wasIn {
		return
	}

	p.delegate.PressOut(ev)
	if !p.inRegion(ev.Position) {
		return
	}
	if p.longPressFired && p.delegate.HasLongPressHandler() {
		return
	}
	p.delegate.Press(p.origin, ev)
}

// Terminate cancels the gesture without a tap.
func (p *PressRecognizer) Terminate(ev ResponderEvent) {
	if p.state == PressIdle {
		return
	}
	ev = stamp(ev)
	p.cancelLongPress()
	wasIn := p.state == PressedIn
	p.state = PressIdle
	if wasIn {
		p.delegate.PressOut(ev)
	}
}

// Reset drops any gesture in progress without notifying the delegate.
func (p *PressRecognizer) Reset() {
	p.cancelLongPress()
	p.state = PressIdle
	p.longPressFired = false
}

// Dispose releases the long-press timer.
func (p *PressRecognizer) Dispose() {
	p.Reset()
}

func (p *PressRecognizer) handleLongPress() {
	p.longPress = nil
	if p.state != PressedIn {
		return
	}
	p.longPressFired = true
	p.delegate.LongPress(ResponderEvent{
		PointerID: p.origin.PointerID,
		Position:  p.origin.Position,
		Timestamp: animation.Now(),
	})
}

func (p *PressRecognizer) cancelLongPress() {
	if p.longPress != nil {
		p.longPress.Stop()
		p.longPress = nil
	}
}

func (p *PressRecognizer) inRegion(pos graphics.Offset) bool {
	if p.bounds == nil {
		return true
	}
	bounds, ok := p.bounds()
	if !ok {
		return true
	}
	return bounds.Inflate(p.timing.PressRegionInset()).Contains(pos)
}

func stamp(ev ResponderEvent) ResponderEvent {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = animation.Now()
	}
	return ev
}
