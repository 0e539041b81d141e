package focus

import (
	"fmt"
	"testing"

	"github.com/go-drift/pressable/pkg/errors"
)

type fakeFocuser struct {
	ids []int64
	err error
}

func (f *fakeFocuser) SetAccessibilityFocus(id int64) error {
	f.ids = append(f.ids, id)
	return f.err
}

func TestRequestFocus(t *testing.T) {
	focuser := &fakeFocuser{}
	m := NewFocusManager(focuser)

	var changes []bool
	a := &FocusNode{CanRequestFocus: true, SemanticsNodeID: 7, OnFocusChange: func(f bool) { changes = append(changes, f) }}
	b := &FocusNode{CanRequestFocus: true, SemanticsNodeID: 9}

	m.RequestFocus(a)
	m.RequestFocus(b)

	if len(focuser.ids) != 2 || focuser.ids[0] != 7 || focuser.ids[1] != 9 {
		t.Errorf("focused ids = %v, want [7 9]", focuser.ids)
	}
	if m.PrimaryFocus != b || a.HasPrimaryFocus() || !b.HasPrimaryFocus() {
		t.Error("expected b to hold primary focus")
	}
	if len(changes) != 2 || !changes[0] || changes[1] {
		t.Errorf("a focus changes = %v, want [true false]", changes)
	}
}

func TestRequestFocus_NotFocusable(t *testing.T) {
	focuser := &fakeFocuser{}
	m := NewFocusManager(focuser)

	m.RequestFocus(&FocusNode{SemanticsNodeID: 1})
	m.RequestFocus(nil)

	if len(focuser.ids) != 0 {
		t.Errorf("focuser called with %v", focuser.ids)
	}
}

func TestRequestFocus_ReportsPlatformError(t *testing.T) {
	var reported *errors.PressableError
	prev := errors.SetHandler(reportFunc(func(err *errors.PressableError) { reported = err }))
	defer errors.SetHandler(prev)

	m := NewFocusManager(&fakeFocuser{err: fmt.Errorf("no window")})
	node := &FocusNode{CanRequestFocus: true, SemanticsNodeID: 3, DebugLabel: "submit"}
	m.RequestFocus(node)

	if reported == nil || reported.Kind != errors.KindFocus {
		t.Fatalf("reported = %+v, want focus error", reported)
	}
	if !node.HasPrimaryFocus() {
		t.Error("logical focus should still move on platform failure")
	}
}

func TestUnfocus(t *testing.T) {
	m := NewFocusManager(nil)
	a := &FocusNode{CanRequestFocus: true}
	b := &FocusNode{CanRequestFocus: true}

	m.RequestFocus(a)
	m.Unfocus(b)
	if m.PrimaryFocus != a {
		t.Error("Unfocus of a non-focused node should not change focus")
	}
	m.Unfocus(a)
	if m.PrimaryFocus != nil || a.HasPrimaryFocus() {
		t.Error("expected focus to be cleared")
	}
}

type reportFunc func(*errors.PressableError)

func (f reportFunc) HandleError(err *errors.PressableError) { f(err) }
func (f reportFunc) HandlePanic(*errors.PanicError)         {}
