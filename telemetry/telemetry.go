// Package telemetry provides hierarchical timing collection for pipeline
// stages. Collectors travel through the context so instrumentation stays
// non-intrusive: code that times its work asks the context for a collector
// and gets a no-op one when telemetry is disabled.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.FromContext(ctx).Start("process instruction")
//	child := timer.Child("parse")
//	// ... work ...
//	child.End()
//	timer.End()
//
//	collector.Report(os.Stderr)
package telemetry

import (
	"context"
	"io"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers timing data for a command invocation.
type Collector interface {
	// Start begins timing an operation. The returned timer must be ended
	// with End when the operation completes.
	Start(name string) Timer

	// Report writes the collected timings to w.
	Report(w io.Writer)
}

// Timer tracks a single operation. Timers nest via Child.
type Timer interface {
	// End stops the timer and records the duration.
	End()

	// Child creates a nested timer under this one.
	Child(name string) Timer
}

// WithCollector returns a context carrying the collector.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from the context, or a no-op
// collector when none is present. It never returns nil.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// noOpCollector discards all timings. It is the zero-overhead default when
// telemetry is disabled.
type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer { return noOpTimer{} }
func (noOpCollector) Report(w io.Writer)      {}

type noOpTimer struct{}

func (noOpTimer) End()                    {}
func (noOpTimer) Child(name string) Timer { return noOpTimer{} }
