package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/pressable/pkg/errors"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"", slog.LevelInfo, false},
		{"trace", 0, true},
	}
	for _, tt := range tests {
		got, err := parseLogLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	captureStdout(t)
	if err := Execute([]string{"bogus"}); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("Execute error = %v", err)
	}
}

func TestExecute_HelpListsCommands(t *testing.T) {
	out := captureStdout(t)
	if err := Execute(nil); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"run", "theme"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestExecute_Version(t *testing.T) {
	out := captureStdout(t)
	if err := Execute([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("version output = %q", out.String())
	}
}

func TestTheme_PrintsResolvedValues(t *testing.T) {
	out := captureStdout(t)
	path := writeFile(t, "theme.yaml", "version: v1.0.0\nunderlayHideDelay: 150ms\nunderlayColor: \"#FF112233\"\n")

	if err := Execute([]string{"theme", path}); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"underlayHideDelay:        150ms", "#FF112233", "longPressDelay:           20ms"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("theme output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_RequiresScenario(t *testing.T) {
	if _, err := parseRunFlags(nil); err == nil {
		t.Error("expected error without -scenario")
	}
	opts, err := parseRunFlags([]string{"-trace", "taps.yaml"})
	if err != nil || opts.scenario != "taps.yaml" || !opts.trace {
		t.Errorf("parseRunFlags = %+v, %v", opts, err)
	}
}

func TestRun_TraceExportsTapSpans(t *testing.T) {
	out := captureStdout(t)
	prev := errors.SetHandler(nil)
	t.Cleanup(func() { errors.SetHandler(prev) })
	path := writeFile(t, "taps.yaml", `
name: trace
events:
  - {at: 0ms, type: grant}
  - {at: 12ms, type: release}
`)

	if err := Execute([]string{"run", "-scenario", path, "-log-level", "error", "-trace"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "pressable.tap") {
		t.Errorf("trace output missing tap span:\n%s", out.String())
	}
}
