package testing

import (
	"time"

	"github.com/go-drift/pressable/pkg/gestures"
	"github.com/go-drift/pressable/pkg/graphics"
)

// targetID is the responder id the simulator registers its handler under.
const targetID = "target"

// GestureSimulator drives a gestures.Handler through a real Responder with
// timestamps taken from the harness clock.
type GestureSimulator struct {
	harness   *Harness
	responder *gestures.Responder
	pointerID int64
	last      graphics.Offset
}

// NewGestureSimulator registers target with a fresh Responder.
func NewGestureSimulator(h *Harness, target gestures.Handler) *GestureSimulator {
	r := gestures.NewResponder(nil)
	r.Register(targetID, target)
	return &GestureSimulator{harness: h, responder: r}
}

// Responder exposes the underlying responder, for termination tests.
func (g *GestureSimulator) Responder() *gestures.Responder {
	return g.responder
}

// Grant starts a gesture at pos. It reports whether the grant happened.
func (g *GestureSimulator) Grant(pos graphics.Offset) bool {
	g.pointerID++
	g.last = pos
	return g.responder.Grant(targetID, g.event(pos))
}

// Move moves the active pointer to pos.
func (g *GestureSimulator) Move(pos graphics.Offset) {
	g.last = pos
	g.responder.Move(g.event(pos))
}

// Release lifts the active pointer at its last position.
func (g *GestureSimulator) Release() {
	g.responder.Release(g.event(g.last))
}

// ReleaseAt lifts the active pointer at pos.
func (g *GestureSimulator) ReleaseAt(pos graphics.Offset) {
	g.last = pos
	g.responder.Release(g.event(pos))
}

// Terminate cancels the active gesture.
func (g *GestureSimulator) Terminate() {
	g.responder.Terminate(g.event(g.last))
}

// Tap grants at pos, holds for hold, then releases.
func (g *GestureSimulator) Tap(pos graphics.Offset, hold time.Duration) {
	g.Grant(pos)
	g.harness.Advance(hold)
	g.Release()
}

func (g *GestureSimulator) event(pos graphics.Offset) gestures.ResponderEvent {
	return gestures.ResponderEvent{
		PointerID: g.pointerID,
		Position:  pos,
		Timestamp: g.harness.Now(),
	}
}
