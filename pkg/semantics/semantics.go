// Package semantics carries accessibility metadata from a pressable control
// to the host's accessibility adapter. The values are forwarded verbatim;
// translating them into platform strings is the adapter's job.
package semantics

// SemanticsRole describes what kind of control a node is.
type SemanticsRole int

const (
	// SemanticsRoleNone leaves the role to the platform default.
	SemanticsRoleNone SemanticsRole = iota
	// SemanticsRoleButton marks a pressable button.
	SemanticsRoleButton
	// SemanticsRoleLink marks a navigation link.
	SemanticsRoleLink
	// SemanticsRoleImage marks an image-like control.
	SemanticsRoleImage
	// SemanticsRoleHeader marks a header.
	SemanticsRoleHeader
)

func (r SemanticsRole) String() string {
	switch r {
	case SemanticsRoleButton:
		return "button"
	case SemanticsRoleLink:
		return "link"
	case SemanticsRoleImage:
		return "image"
	case SemanticsRoleHeader:
		return "header"
	default:
		return "none"
	}
}

// Importance controls whether assistive technology reports a node.
type Importance int

const (
	// ImportanceAuto lets the platform decide.
	ImportanceAuto Importance = iota
	// ImportanceYes always reports the node.
	ImportanceYes
	// ImportanceNo skips the node but keeps its descendants.
	ImportanceNo
	// ImportanceNoHideDescendants skips the node and its descendants.
	ImportanceNoHideDescendants
)

func (i Importance) String() string {
	switch i {
	case ImportanceYes:
		return "yes"
	case ImportanceNo:
		return "no"
	case ImportanceNoHideDescendants:
		return "no-hide-descendants"
	default:
		return "auto"
	}
}

// Properties is the accessibility metadata of one control.
type Properties struct {
	Label      string
	Role       SemanticsRole
	Importance Importance
}

// IsEmpty reports whether no metadata is set.
func (p Properties) IsEmpty() bool {
	return p == Properties{}
}

// Adapter receives metadata updates for a semantics node.
type Adapter interface {
	UpdateSemantics(nodeID int64, props Properties)
}

// AdapterFunc adapts a function to the Adapter interface.
type AdapterFunc func(nodeID int64, props Properties)

// UpdateSemantics calls f.
func (f AdapterFunc) UpdateSemantics(nodeID int64, props Properties) {
	f(nodeID, props)
}
