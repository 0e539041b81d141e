// Package style holds the subset of declarative view styles the pressable
// core reads and patches: opacity and background color.
//
// A nil field means "unset". Flatten composes style layers the way a
// renderer flattens a style array: later layers win field by field.
package style

import (
	"fmt"
	"strings"

	"github.com/go-drift/pressable/pkg/graphics"
)

// Style is a sparse set of visual properties.
type Style struct {
	// Opacity is the view opacity (0.0 to 1.0).
	Opacity *float64
	// BackgroundColor is the view background.
	BackgroundColor *graphics.Color
}

// Float returns a pointer to v, for use in Style literals.
func Float(v float64) *float64 {
	return &v
}

// ColorPtr returns a pointer to c, for use in Style literals.
func ColorPtr(c graphics.Color) *graphics.Color {
	return &c
}

// Flatten merges the given layers into one style. Later layers override
// earlier ones for every field they set.
func Flatten(styles ...Style) Style {
	var out Style
	for _, s := range styles {
		out = out.Merge(s)
	}
	return out
}

// Merge returns a copy of s with every field set in patch applied on top.
func (s Style) Merge(patch Style) Style {
	if patch.Opacity != nil {
		s.Opacity = Float(*patch.Opacity)
	}
	if patch.BackgroundColor != nil {
		s.BackgroundColor = ColorPtr(*patch.BackgroundColor)
	}
	return s
}

// OpacityOr returns the opacity, or def when unset.
func (s Style) OpacityOr(def float64) float64 {
	if s.Opacity == nil {
		return def
	}
	return *s.Opacity
}

// BackgroundOr returns the background color, or def when unset.
func (s Style) BackgroundOr(def graphics.Color) graphics.Color {
	if s.BackgroundColor == nil {
		return def
	}
	return *s.BackgroundColor
}

// IsZero reports whether no field is set.
func (s Style) IsZero() bool {
	return s.Opacity == nil && s.BackgroundColor == nil
}

func (s Style) String() string {
	var parts []string
	if s.Opacity != nil {
		parts = append(parts, fmt.Sprintf("opacity=%.3f", *s.Opacity))
	}
	if s.BackgroundColor != nil {
		parts = append(parts, "background="+s.BackgroundColor.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
