package theme

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pressable/pkg/animation"
	"github.com/go-drift/pressable/pkg/graphics"
)

// SchemaMajor is the theme file major version this package understands.
const SchemaMajor = "v1"

// pressableFile is the YAML form of PressableThemeData. Every field is
// optional; unset fields keep their defaults.
type pressableFile struct {
	Version                  string      `yaml:"version,omitempty"`
	ActiveOpacity            *float64    `yaml:"activeOpacity,omitempty"`
	PressInDuration          string      `yaml:"pressInDuration,omitempty"`
	PressOutDuration         string      `yaml:"pressOutDuration,omitempty"`
	PressOutCurve            string      `yaml:"pressOutCurve,omitempty"`
	UnderlayHideDelay        string      `yaml:"underlayHideDelay,omitempty"`
	UnderlayColor            string      `yaml:"underlayColor,omitempty"`
	LongPressDelay           string      `yaml:"longPressDelay,omitempty"`
	LongPressAllowedMovement *float64    `yaml:"longPressAllowedMovement,omitempty"`
	PressRegionInset         *insetsFile `yaml:"pressRegionInset,omitempty"`
}

type insetsFile struct {
	Top    *float64 `yaml:"top,omitempty"`
	Left   *float64 `yaml:"left,omitempty"`
	Right  *float64 `yaml:"right,omitempty"`
	Bottom *float64 `yaml:"bottom,omitempty"`
}

// LoadPressableTheme reads a theme file. A missing file yields the defaults.
func LoadPressableTheme(path string) (PressableThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultPressableTheme(), nil
		}
		return PressableThemeData{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParsePressableTheme(data)
}

// ParsePressableTheme decodes YAML theme data on top of the defaults.
func ParsePressableTheme(data []byte) (PressableThemeData, error) {
	var file pressableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return PressableThemeData{}, fmt.Errorf("failed to parse theme: %w", err)
	}
	return file.resolve()
}

func (f pressableFile) resolve() (PressableThemeData, error) {
	t := DefaultPressableTheme()

	if v := strings.TrimSpace(f.Version); v != "" {
		if !semver.IsValid(v) {
			return t, fmt.Errorf("invalid theme version %q", v)
		}
		if semver.Major(v) != SchemaMajor {
			return t, fmt.Errorf("unsupported theme version %s (want %s.x)", v, SchemaMajor)
		}
	}

	if f.ActiveOpacity != nil {
		if *f.ActiveOpacity < 0 || *f.ActiveOpacity > 1 {
			return t, fmt.Errorf("activeOpacity %v out of range [0, 1]", *f.ActiveOpacity)
		}
		t.ActiveOpacity = *f.ActiveOpacity
	}

	durations := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"pressInDuration", f.PressInDuration, &t.PressInDuration},
		{"pressOutDuration", f.PressOutDuration, &t.PressOutDuration},
		{"underlayHideDelay", f.UnderlayHideDelay, &t.UnderlayHideDelay},
		{"longPressDelay", f.LongPressDelay, &t.LongPressDelay},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return t, fmt.Errorf("%s: %w", d.name, err)
		}
		if parsed < 0 {
			return t, fmt.Errorf("%s must not be negative", d.name)
		}
		*d.dst = parsed
	}

	if f.PressOutCurve != "" {
		curve, ok := animation.CurveByName(f.PressOutCurve)
		if !ok {
			return t, fmt.Errorf("unknown pressOutCurve %q", f.PressOutCurve)
		}
		t.PressOutCurve = curve
	}

	if f.UnderlayColor != "" {
		c, err := graphics.ParseColor(f.UnderlayColor)
		if err != nil {
			return t, fmt.Errorf("underlayColor: %w", err)
		}
		t.UnderlayColor = c
	}

	if f.LongPressAllowedMovement != nil {
		t.LongPressAllowedMovement = *f.LongPressAllowedMovement
	}

	if in := f.PressRegionInset; in != nil {
		setIf(&t.PressRegionInset.Top, in.Top)
		setIf(&t.PressRegionInset.Left, in.Left)
		setIf(&t.PressRegionInset.Right, in.Right)
		setIf(&t.PressRegionInset.Bottom, in.Bottom)
	}

	return t, nil
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
