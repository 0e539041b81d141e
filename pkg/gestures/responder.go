package gestures

import (
	"log/slog"

	"github.com/go-drift/pressable/pkg/errors"
)

// Responder routes a well-formed responder stream to registered handlers.
//
// At most one handler is active. Granting a new handler while another holds
// the responder first asks the holder's OnTerminationRequest; the holder is
// terminated on approval, otherwise the grant is refused.
//
// Panics raised by handlers are recovered and reported through
// [errors.ReportPanic] so a faulty callback cannot take down the event loop.
type Responder struct {
	handlers map[string]Handler
	activeID string
	active   Handler
	logger   *slog.Logger
}

// NewResponder creates an empty responder. A nil logger uses slog.Default().
func NewResponder(logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Register adds h under id. Registering the same id twice is a programming
// error and panics with an [*errors.CompositionError].
func (r *Responder) Register(id string, h Handler) {
	_, taken := r.handlers[id]
	errors.Compose("gestures.Responder", id, taken)
	r.handlers[id] = h
}

// Unregister removes the handler for id, terminating it if it is active.
func (r *Responder) Unregister(id string) {
	if r.activeID == id && r.active != nil {
		r.terminateActive(ResponderEvent{})
	}
	delete(r.handlers, id)
}

// Active returns the id of the handler holding the responder.
func (r *Responder) Active() (string, bool) {
	return r.activeID, r.active != nil
}

// Grant hands the responder to the handler registered under id.
// It reports whether the grant happened.
func (r *Responder) Grant(id string, ev ResponderEvent) bool {
	h, ok := r.handlers[id]
	if !ok {
		r.logger.Debug("responder grant for unknown handler", "id", id)
		return false
	}
	if r.active != nil {
		if r.activeID == id {
			return true
		}
		if !r.askTermination() {
			r.logger.Debug("responder grant refused", "id", id, "holder", r.activeID)
			return false
		}
		r.terminateActive(ev)
	}
	r.activeID, r.active = id, h
	r.dispatch("gestures.Responder.Grant", func() { h.OnGrant(ev) })
	return true
}

// Move forwards pointer movement to the active handler.
func (r *Responder) Move(ev ResponderEvent) {
	if h := r.active; h != nil {
		r.dispatch("gestures.Responder.Move", func() { h.OnMove(ev) })
	}
}

// Release ends the gesture normally.
func (r *Responder) Release(ev ResponderEvent) {
	h := r.active
	if h == nil {
		return
	}
	r.activeID, r.active = "", nil
	r.dispatch("gestures.Responder.Release", func() { h.OnRelease(ev) })
}

// Terminate cancels the gesture.
func (r *Responder) Terminate(ev ResponderEvent) {
	if r.active != nil {
		r.terminateActive(ev)
	}
}

func (r *Responder) askTermination() (allow bool) {
	allow = true
	r.dispatch("gestures.Responder.TerminationRequest", func() {
		allow = r.active.OnTerminationRequest()
	})
	return allow
}

func (r *Responder) terminateActive(ev ResponderEvent) {
	h := r.active
	r.activeID, r.active = "", nil
	r.dispatch("gestures.Responder.Terminate", func() { h.OnTerminate(ev) })
}

func (r *Responder) dispatch(op string, fn func()) {
	defer errors.Recover(op)
	fn()
}
