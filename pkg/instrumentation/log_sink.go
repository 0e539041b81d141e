package instrumentation

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"
)

// LogSink writes samples to a slog logger, throttled so a burst of taps
// cannot flood the log. Samples over the limit are counted and the count is
// attached to the next record that gets through.
type LogSink struct {
	logger  *slog.Logger
	limiter *rate.Limiter
	dropped int
}

// NewLogSink creates a sink allowing perSecond records with the given burst.
// A non-positive perSecond disables throttling.
func NewLogSink(logger *slog.Logger, perSecond float64, burst int) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	if burst < 1 {
		burst = 1
	}
	return &LogSink{
		logger:  logger,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// RecordTap logs the sample at debug level when the limiter allows it.
func (s *LogSink) RecordTap(ctx context.Context, sample Sample) {
	if !s.limiter.AllowN(sample.CompletedAt, 1) {
		s.dropped++
		return
	}
	attrs := []slog.Attr{
		slog.String("control", sample.Control),
		slog.Int64("pointer", sample.Origin.PointerID),
		slog.Duration("latency", sample.Latency()),
	}
	if s.dropped > 0 {
		attrs = append(attrs, slog.Int("dropped", s.dropped))
		s.dropped = 0
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "touch latency", attrs...)
}

// Dropped returns the number of samples suppressed since the last record.
func (s *LogSink) Dropped() int {
	return s.dropped
}
