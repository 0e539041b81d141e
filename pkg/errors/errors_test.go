package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestPressableErrorString(t *testing.T) {
	err := &PressableError{
		Op:   "theme.LoadPressableTheme",
		Kind: KindConfig,
		Err:  fmt.Errorf("bad duration"),
	}
	want := "theme.LoadPressableTheme [config]: bad duration"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindComposition, "composition"},
		{KindCallback, "callback"},
		{KindFocus, "focus"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "gestures.Responder.Release"
	if got, want := err.Error(), "panic in gestures.Responder.Release: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *PressableError
	prev := SetHandler(&testHandler{onError: func(err *PressableError) { captured = err }})
	defer SetHandler(prev)

	Report(&PressableError{Op: "test.op", Kind: KindFocus, Err: fmt.Errorf("x")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	prev := SetHandler(&testHandler{
		onError: func(*PressableError) { called = true },
		onPanic: func(*PanicError) { called = true },
	})
	defer SetHandler(prev)

	Report(nil)
	ReportPanic(nil)
	if called {
		t.Error("handler should not be called for nil errors")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("boom")
	}()

	if captured == nil {
		t.Fatal("expected panic to be captured")
	}
	if captured.Op != "test.recover" || captured.Value != "boom" {
		t.Errorf("captured = %+v", captured)
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace")
	}
}

func TestCompose(t *testing.T) {
	Compose("registry", "free", false)

	defer func() {
		r := recover()
		ce, ok := r.(*CompositionError)
		if !ok {
			t.Fatalf("recovered %T, want *CompositionError", r)
		}
		if ce.Name != "taken" || !strings.Contains(ce.Error(), "already registered") {
			t.Errorf("CompositionError = %v", ce)
		}
	}()
	Compose("registry", "taken", true)
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)

	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("DefaultHandler = %T, want *LogHandler", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil)), Verbose: true}

	h.HandleError(&PressableError{Op: "focus.RequestFocus", Kind: KindFocus, Err: fmt.Errorf("no node"), StackTrace: "frame"})
	h.HandlePanic(&PanicError{Op: "gestures.Responder.Grant", Value: "boom"})

	out := buf.String()
	for _, want := range []string{"op=focus.RequestFocus", "kind=focus", "stack=frame", "value=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*PressableError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *PressableError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
