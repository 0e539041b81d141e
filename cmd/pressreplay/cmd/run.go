package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-drift/pressable/cmd/pressreplay/internal/scenario"
	"github.com/go-drift/pressable/pkg/errors"
	"github.com/go-drift/pressable/pkg/instrumentation"
	"github.com/go-drift/pressable/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Replay a gesture scenario",
		Long: `Replay a YAML gesture scenario against a pressable control.

Time is simulated: events are applied at their scripted offsets and the
control's timers and animations advance in 1ms frames.

Flags:
  -scenario FILE     Scenario to replay (required)
  -theme FILE        Theme overriding the default timing (optional)
  -log-level LEVEL   error, warn, info or debug (default: info)
  -rate N            Latency log records per second, 0 for unlimited (default: 0)
  -trace             Export a span per completed tap to stdout

Scenario format:
  name: rapid-taps
  control:
    underlayColor: "#FFDDDDDD"
    handlers: [press, pressIn, pressOut, longPress]
  events:
    - {at: 0ms, type: grant, x: 50, y: 20}
    - {at: 10ms, type: release}
  until: 300ms

Opacity frames are logged at debug level.`,
		Usage: "pressreplay run -scenario FILE [-theme FILE] [-log-level LEVEL] [-trace]",
		Run:   runReplay,
	})
}

type runOptions struct {
	scenario string
	theme    string
	logLevel string
	rate     float64
	trace    bool
}

func parseRunFlags(args []string) (runOptions, error) {
	var opts runOptions
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.scenario, "scenario", "", "scenario file")
	fs.StringVar(&opts.theme, "theme", "", "theme file")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level")
	fs.Float64Var(&opts.rate, "rate", 0, "latency log records per second")
	fs.BoolVar(&opts.trace, "trace", false, "export tap spans")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.scenario == "" && fs.NArg() > 0 {
		opts.scenario = fs.Arg(0)
	}
	if opts.scenario == "" {
		return opts, fmt.Errorf("-scenario is required\n\nUsage: pressreplay run -scenario FILE")
	}
	return opts, nil
}

func runReplay(args []string) error {
	opts, err := parseRunFlags(args)
	if err != nil {
		return err
	}
	level, err := parseLogLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger := setupLogger(os.Stderr, level)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: level <= slog.LevelDebug})

	sc, err := scenario.Load(opts.scenario)
	if err != nil {
		return err
	}

	replayOpts := scenario.Options{Logger: logger}
	if opts.theme != "" {
		t, err := theme.LoadPressableTheme(opts.theme)
		if err != nil {
			return err
		}
		replayOpts.Theme = &t
	}

	sinks := []instrumentation.LatencySink{instrumentation.NewLogSink(logger, opts.rate, 1)}
	if opts.trace {
		tp, shutdown, err := setupTracing(stdout)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("trace shutdown failed", "error", err)
			}
		}()
		sinks = append(sinks, instrumentation.NewTraceSink(tp))
	}
	replayOpts.Sink = instrumentation.Multi(sinks...)

	logger.Info("replaying scenario", "name", sc.Name, "events", len(sc.Events), "until", sc.Until)
	timeline := scenario.Run(sc, replayOpts)
	printTimeline(logger, timeline)
	return nil
}

// printTimeline logs each entry. Opacity frames are debug-level noise; the
// rest is the interesting part of a replay.
func printTimeline(logger *slog.Logger, timeline scenario.Timeline) {
	ctx := context.Background()
	for _, e := range timeline {
		level := slog.LevelInfo
		if e.Kind == scenario.KindOpacity {
			level = slog.LevelDebug
		}
		logger.Log(ctx, level, e.Kind, "at", e.At, "detail", e.Detail)
	}
}
