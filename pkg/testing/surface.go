package testing

import (
	"time"

	"github.com/go-drift/pressable/pkg/animation"
	"github.com/go-drift/pressable/pkg/graphics"
	"github.com/go-drift/pressable/pkg/style"
)

// Patch is one SetNativeProps call observed by a RecordingSurface.
type Patch struct {
	// At is the animation clock time of the call.
	At time.Time
	// Style is the patch as received.
	Style style.Style
}

// RecordingSurface is an in-memory surface that records every style patch.
type RecordingSurface struct {
	// Rect is returned from Bounds when HasBounds is true.
	Rect      graphics.Rect
	HasBounds bool

	patches []Patch
	current style.Style
}

// NewRecordingSurface creates a surface with the given layout bounds.
func NewRecordingSurface(bounds graphics.Rect) *RecordingSurface {
	return &RecordingSurface{Rect: bounds, HasBounds: true}
}

// SetNativeProps records and applies a patch.
func (s *RecordingSurface) SetNativeProps(patch style.Style) {
	s.patches = append(s.patches, Patch{At: animation.Now(), Style: patch})
	s.current = s.current.Merge(patch)
}

// Bounds returns the configured layout bounds.
func (s *RecordingSurface) Bounds() (graphics.Rect, bool) {
	return s.Rect, s.HasBounds
}

// Current returns the accumulated style.
func (s *RecordingSurface) Current() style.Style {
	return s.current
}

// Opacity returns the current opacity, 1 when never set.
func (s *RecordingSurface) Opacity() float64 {
	return s.current.OpacityOr(1)
}

// Background returns the current background, transparent when never set.
func (s *RecordingSurface) Background() graphics.Color {
	return s.current.BackgroundOr(graphics.ColorTransparent)
}

// Patches returns every recorded patch in order.
func (s *RecordingSurface) Patches() []Patch {
	return s.patches
}

// PatchCount returns the number of recorded patches.
func (s *RecordingSurface) PatchCount() int {
	return len(s.patches)
}

// OpacityPatches returns only the patches that set opacity.
func (s *RecordingSurface) OpacityPatches() []Patch {
	var out []Patch
	for _, p := range s.patches {
		if p.Style.Opacity != nil {
			out = append(out, p)
		}
	}
	return out
}

// BackgroundPatches returns only the patches that set the background.
func (s *RecordingSurface) BackgroundPatches() []Patch {
	var out []Patch
	for _, p := range s.patches {
		if p.Style.BackgroundColor != nil {
			out = append(out, p)
		}
	}
	return out
}

// Reset forgets recorded patches but keeps the current style.
func (s *RecordingSurface) Reset() {
	s.patches = nil
}
