// Package errors provides structured error reporting for the pressable core.
//
// The interaction path never returns errors to the caller: failures degrade
// to "no visual feedback" and are handed to the global [ErrorHandler]. The
// one loud failure is a composition fault (two behaviors registered under
// the same name), which panics with a [*CompositionError] at construction.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid theme or configuration.
	KindConfig
	// KindComposition indicates conflicting handler registration.
	KindComposition
	// KindCallback indicates a failure inside a user-supplied handler.
	KindCallback
	// KindFocus indicates the accessibility focus collaborator failed.
	KindFocus
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindComposition:
		return "composition"
	case KindCallback:
		return "callback"
	case KindFocus:
		return "focus"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// PressableError is a structured, reportable error.
type PressableError struct {
	// Op is the operation that failed (e.g., "focus.Node.RequestFocus").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PressableError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PressableError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "gestures.Responder.Release").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// CompositionError reports two behaviors registered under one name.
type CompositionError struct {
	// Owner is the registry that detected the collision.
	Owner string
	// Name is the conflicting registration.
	Name string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("%s: %q is already registered", e.Owner, e.Name)
}

// ErrorHandler receives errors reported by the pressable core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *PressableError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
