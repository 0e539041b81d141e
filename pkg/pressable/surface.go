package pressable

import (
	"github.com/go-drift/pressable/pkg/graphics"
	"github.com/go-drift/pressable/pkg/style"
)

// Surface is the rendered view a controller pushes style patches to without
// a full rebuild.
type Surface interface {
	// SetNativeProps merges patch into the view's current style.
	SetNativeProps(patch style.Style)
	// Bounds returns the laid-out bounds. ok is false before layout.
	Bounds() (bounds graphics.Rect, ok bool)
}
