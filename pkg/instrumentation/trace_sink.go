package instrumentation

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/go-drift/pressable"

// TapSpanName is the name of the span emitted per tap.
const TapSpanName = "pressable.tap"

// TraceSink emits one span per tap, starting at the grant timestamp and
// ending when the tap was recognized.
type TraceSink struct {
	tracer trace.Tracer
}

// NewTraceSink creates a sink on tp. A nil provider uses the global one.
func NewTraceSink(tp trace.TracerProvider) *TraceSink {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &TraceSink{tracer: tp.Tracer(tracerName)}
}

// RecordTap emits the tap span.
func (s *TraceSink) RecordTap(ctx context.Context, sample Sample) {
	_, span := s.tracer.Start(ctx, TapSpanName,
		trace.WithTimestamp(sample.Origin.Timestamp),
		trace.WithAttributes(
			attribute.String("pressable.control", sample.Control),
			attribute.Int64("pointer.id", sample.Origin.PointerID),
			attribute.Float64("pointer.x", sample.Origin.Position.X),
			attribute.Float64("pointer.y", sample.Origin.Position.Y),
			attribute.Int64("latency.us", sample.Latency().Microseconds()),
		),
	)
	span.End(trace.WithTimestamp(sample.CompletedAt))
}
