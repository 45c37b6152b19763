package hypergo

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/hypergo/hyper"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    addCounter      prometheus.Counter
//	    removeHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordAdd(kind hyper.Kind, duration time.Duration, err error) {
//	    p.addCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordAdd is called after each insertion.
	// kind is the kind of element added, err is nil if successful.
	RecordAdd(kind hyper.Kind, duration time.Duration, err error)

	// RecordRemove is called after each removal, cascades included.
	RecordRemove(duration time.Duration, err error)

	// RecordFind is called after each value or link search.
	RecordFind(duration time.Duration, err error)

	// RecordSnapshot is called after each snapshot save or load.
	RecordSnapshot(op string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(hyper.Kind, time.Duration, error) {}

func (NoopMetricsCollector) RecordRemove(time.Duration, error) {}

func (NoopMetricsCollector) RecordFind(time.Duration, error) {}

func (NoopMetricsCollector) RecordSnapshot(string, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount      atomic.Int64
	AddErrors     atomic.Int64
	AddTotalNanos atomic.Int64

	RemoveCount  atomic.Int64
	RemoveErrors atomic.Int64

	FindCount      atomic.Int64
	FindErrors     atomic.Int64
	FindTotalNanos atomic.Int64

	SnapshotCount  atomic.Int64
	SnapshotErrors atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(_ hyper.Kind, duration time.Duration, err error) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())

	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(_ time.Duration, err error) {
	b.RemoveCount.Add(1)

	if err != nil {
		b.RemoveErrors.Add(1)
	}
}

// RecordFind implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFind(duration time.Duration, err error) {
	b.FindCount.Add(1)
	b.FindTotalNanos.Add(duration.Nanoseconds())

	if err != nil {
		b.FindErrors.Add(1)
	}
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(_ string, _ time.Duration, err error) {
	b.SnapshotCount.Add(1)

	if err != nil {
		b.SnapshotErrors.Add(1)
	}
}
