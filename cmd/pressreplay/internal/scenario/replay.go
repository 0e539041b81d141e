package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-drift/pressable/pkg/instrumentation"
	"github.com/go-drift/pressable/pkg/pressable"
	"github.com/go-drift/pressable/pkg/style"
	drifttest "github.com/go-drift/pressable/pkg/testing"
	"github.com/go-drift/pressable/pkg/theme"
)

// Entry kinds in a Timeline.
const (
	KindEvent    = "event"
	KindCallback = "callback"
	KindOpacity  = "opacity"
	KindUnderlay = "background"
	KindLatency  = "latency"
)

// Entry is one observation during a replay.
type Entry struct {
	At     time.Duration
	Kind   string
	Detail string
}

func (e Entry) String() string {
	return fmt.Sprintf("%8v %-10s %s", e.At, e.Kind, e.Detail)
}

// Timeline is the ordered record of a replay.
type Timeline []Entry

// Filter returns the entries of the given kind.
func (t Timeline) Filter(kind string) Timeline {
	var out Timeline
	for _, e := range t {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Options tune a replay.
type Options struct {
	// Theme overrides the default tuning when non-nil.
	Theme  *theme.PressableThemeData
	Logger *slog.Logger
	// Sink receives latency samples in addition to the timeline.
	Sink instrumentation.LatencySink
}

// Run replays sc against a fresh controller and returns what happened. It
// installs a fake animation clock for the duration of the call.
func Run(sc *Scenario, opts Options) Timeline {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tuning := theme.DefaultPressableTheme()
	if opts.Theme != nil {
		tuning = *opts.Theme
	}

	h := drifttest.NewHarnessNoCleanup()
	defer h.Close()

	var tl Timeline
	add := func(kind, detail string) {
		tl = append(tl, Entry{At: h.Elapsed(), Kind: kind, Detail: detail})
	}

	surface := &recordingSurface{
		RecordingSurface: drifttest.NewRecordingSurface(sc.Bounds),
		add:              add,
	}
	latency := instrumentation.SinkFunc(func(_ context.Context, s instrumentation.Sample) {
		add(KindLatency, s.Latency().String())
	})

	cfg := sc.Control.config(func(handler string) { add(KindCallback, handler) })
	ctrl := pressable.New(cfg,
		pressable.WithTheme(tuning),
		pressable.WithLogger(logger),
		pressable.WithName(sc.Name),
		pressable.WithLatencySink(instrumentation.Multi(latency, opts.Sink)),
	)
	ctrl.Mount(surface)
	sim := drifttest.NewGestureSimulator(h, ctrl)

	for _, ev := range sc.Events {
		h.AdvanceTo(ev.At)
		add(KindEvent, fmt.Sprintf("%s (%.0f, %.0f)", ev.Type, ev.Position.X, ev.Position.Y))
		switch ev.Type {
		case EventGrant:
			if !sim.Grant(ev.Position) {
				logger.Warn("grant refused", "at", ev.At)
			}
		case EventMove:
			sim.Move(ev.Position)
		case EventRelease:
			sim.ReleaseAt(ev.Position)
		case EventTerminate:
			sim.Terminate()
		case EventUnmount:
			ctrl.Unmount()
		case EventDisable:
			ctrl.Update(ctrl.Config().WithDisabled(true))
		case EventEnable:
			ctrl.Update(ctrl.Config().WithDisabled(false))
		}
	}
	h.AdvanceTo(sc.Until)
	ctrl.Dispose()
	return tl
}

// recordingSurface adds every style patch to the timeline.
type recordingSurface struct {
	*drifttest.RecordingSurface
	add func(kind, detail string)
}

func (s *recordingSurface) SetNativeProps(patch style.Style) {
	s.RecordingSurface.SetNativeProps(patch)
	if patch.Opacity != nil {
		s.add(KindOpacity, fmt.Sprintf("%.3f", *patch.Opacity))
	}
	if patch.BackgroundColor != nil {
		s.add(KindUnderlay, patch.BackgroundColor.String())
	}
}
