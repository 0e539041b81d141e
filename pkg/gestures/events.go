// Package gestures defines the responder contract between the host's gesture
// system and pressable controls, plus the press recognizer that turns the
// responder stream into press-in, press-out, press and long-press.
//
// The host owns hit-testing. Once it decides a pointer belongs to a control it
// drives that control through [Responder]: one Grant, any number of Moves,
// then exactly one Release or Terminate.
package gestures

import (
	"time"

	"github.com/go-drift/pressable/pkg/graphics"
)

// ResponderEvent is one step of a responder gesture.
type ResponderEvent struct {
	// PointerID identifies the pointer that owns the gesture.
	PointerID int64
	// Position is the pointer location in the control's coordinate space.
	Position graphics.Offset
	// Timestamp is when the host observed the event. Zero means "now".
	Timestamp time.Time
}

// Handler is implemented by anything that can hold the responder.
type Handler interface {
	// OnGrant is called when the gesture is claimed by this handler.
	OnGrant(ev ResponderEvent)
	// OnMove is called for pointer movement while granted.
	OnMove(ev ResponderEvent)
	// OnRelease is called when the pointer lifts normally.
	OnRelease(ev ResponderEvent)
	// OnTerminate is called when the gesture is taken away or cancelled.
	OnTerminate(ev ResponderEvent)
	// OnTerminationRequest asks whether another handler may take over.
	OnTerminationRequest() bool
	// LongPressDelay is how long a press must be held to count as long.
	LongPressDelay() time.Duration
	// PressRegionInset enlarges the pressable region beyond the bounds.
	PressRegionInset() graphics.EdgeInsets
}
