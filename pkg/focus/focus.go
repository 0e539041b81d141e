// Package focus routes imperative focus requests to the platform's
// accessibility focus.
package focus

import (
	"fmt"

	"github.com/go-drift/pressable/pkg/errors"
)

// AccessibilityFocuser moves the platform's accessibility cursor.
type AccessibilityFocuser interface {
	SetAccessibilityFocus(nodeID int64) error
}

// FocusNode represents a focusable control.
type FocusNode struct {
	CanRequestFocus bool
	DebugLabel      string

	OnFocusChange func(hasFocus bool)

	// SemanticsNodeID links this focus node to a semantics node ID.
	SemanticsNodeID int64

	hasPrimaryFocus bool
}

// HasPrimaryFocus reports whether this node is the primary focus.
func (n *FocusNode) HasPrimaryFocus() bool {
	return n.hasPrimaryFocus
}

func (n *FocusNode) canReceiveFocus() bool {
	return n != nil && n.CanRequestFocus
}

func (n *FocusNode) setFocusState(hasFocus bool) {
	n.hasPrimaryFocus = hasFocus
	if n.OnFocusChange != nil {
		n.OnFocusChange(hasFocus)
	}
}

// FocusManager tracks the primary focus and forwards focus moves to the
// platform.
type FocusManager struct {
	PrimaryFocus *FocusNode

	focuser AccessibilityFocuser
}

// NewFocusManager creates a manager. A nil focuser keeps focus purely
// logical.
func NewFocusManager(focuser AccessibilityFocuser) *FocusManager {
	return &FocusManager{focuser: focuser}
}

// RequestFocus makes node the primary focus and moves accessibility focus to
// its semantics node. Platform failures are reported, never returned.
func (m *FocusManager) RequestFocus(node *FocusNode) {
	if !node.canReceiveFocus() {
		return
	}
	m.setPrimaryFocus(node)
	if m.focuser == nil {
		return
	}
	if err := m.focuser.SetAccessibilityFocus(node.SemanticsNodeID); err != nil {
		errors.Report(&errors.PressableError{
			Op:   "focus.FocusManager.RequestFocus",
			Kind: errors.KindFocus,
			Err:  fmt.Errorf("node %d (%s): %w", node.SemanticsNodeID, node.DebugLabel, err),
		})
	}
}

// Unfocus removes focus from node if it has primary focus.
func (m *FocusManager) Unfocus(node *FocusNode) {
	if m.PrimaryFocus == node {
		m.setPrimaryFocus(nil)
	}
}

func (m *FocusManager) setPrimaryFocus(node *FocusNode) {
	if m.PrimaryFocus == node {
		return
	}
	if m.PrimaryFocus != nil {
		m.PrimaryFocus.setFocusState(false)
	}
	m.PrimaryFocus = node
	if node != nil {
		node.setFocusState(true)
	}
}
