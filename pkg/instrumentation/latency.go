// Package instrumentation records touch latency: the time from a gesture
// grant to the moment the control recognizes the tap.
package instrumentation

import (
	"context"
	"time"

	"github.com/go-drift/pressable/pkg/gestures"
)

// Sample is one completed tap.
type Sample struct {
	// Origin is the grant event that started the gesture.
	Origin gestures.ResponderEvent
	// CompletedAt is when the tap was recognized.
	CompletedAt time.Time
	// Control names the control that produced the sample.
	Control string
}

// Latency returns the grant-to-tap duration.
func (s Sample) Latency() time.Duration {
	return s.CompletedAt.Sub(s.Origin.Timestamp)
}

// LatencySink receives a sample for every completed tap. Sinks run on the UI
// thread and must not block.
type LatencySink interface {
	RecordTap(ctx context.Context, sample Sample)
}

// SinkFunc adapts a function to the LatencySink interface.
type SinkFunc func(ctx context.Context, sample Sample)

// RecordTap calls f.
func (f SinkFunc) RecordTap(ctx context.Context, sample Sample) {
	f(ctx, sample)
}

// Discard drops every sample.
var Discard LatencySink = SinkFunc(func(context.Context, Sample) {})

type multiSink []LatencySink

// Multi fans samples out to every non-nil sink in order.
func Multi(sinks ...LatencySink) LatencySink {
	var out multiSink
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multiSink) RecordTap(ctx context.Context, sample Sample) {
	for _, s := range m {
		s.RecordTap(ctx, sample)
	}
}
