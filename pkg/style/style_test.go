package style

import (
	"testing"

	"github.com/go-drift/pressable/pkg/graphics"
)

func TestFlatten_LaterLayersWin(t *testing.T) {
	red := graphics.RGB(255, 0, 0)
	blue := graphics.RGB(0, 0, 255)

	got := Flatten(
		Style{Opacity: Float(0.6), BackgroundColor: ColorPtr(red)},
		Style{},
		Style{BackgroundColor: ColorPtr(blue)},
	)

	if got.OpacityOr(1) != 0.6 {
		t.Errorf("opacity = %v, want 0.6", got.OpacityOr(1))
	}
	if got.BackgroundOr(0) != blue {
		t.Errorf("background = %v, want %v", got.BackgroundOr(0), blue)
	}
}

func TestFlatten_Empty(t *testing.T) {
	got := Flatten()
	if !got.IsZero() {
		t.Errorf("Flatten() = %v, want zero", got)
	}
	if got.OpacityOr(1) != 1 {
		t.Errorf("OpacityOr default = %v, want 1", got.OpacityOr(1))
	}
	if got.BackgroundOr(graphics.ColorTransparent) != graphics.ColorTransparent {
		t.Error("expected transparent default background")
	}
}

func TestMerge_DoesNotAlias(t *testing.T) {
	base := Style{Opacity: Float(0.5)}
	patch := Style{Opacity: Float(0.9)}

	merged := base.Merge(patch)
	*patch.Opacity = 0.1

	if merged.OpacityOr(0) != 0.9 {
		t.Errorf("merged opacity = %v, want 0.9", merged.OpacityOr(0))
	}
	if base.OpacityOr(0) != 0.5 {
		t.Errorf("base opacity mutated to %v", base.OpacityOr(0))
	}
}

func TestStyle_String(t *testing.T) {
	s := Style{Opacity: Float(0.25), BackgroundColor: ColorPtr(graphics.ColorWhite)}
	want := "{opacity=0.250 background=#FFFFFFFF}"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
