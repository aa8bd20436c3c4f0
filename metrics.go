package grapevec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives storage events from vectors.
// Implement it to export to a monitoring system; implementations must be
// safe for concurrent use because one collector is shared by a Factory.
type MetricsCollector interface {
	// RecordGrowth is called after every reallocation attempt.
	// bytes is the size of the new region; err is nil on success.
	RecordGrowth(oldCap, newCap, bytes int, duration time.Duration, err error)

	// RecordRelease is called when a vector's storage is released.
	RecordRelease(bytes int)
}

// NoopMetricsCollector discards all events.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrowth(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRelease(int)                                {}

// BasicMetricsCollector keeps in-memory counters.
type BasicMetricsCollector struct {
	Reallocations    atomic.Int64
	GrowthErrors     atomic.Int64
	GrowthTotalNanos atomic.Int64
	BytesReserved    atomic.Int64
	BytesLive        atomic.Int64
	Releases         atomic.Int64
}

// RecordGrowth implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrowth(oldCap, newCap, bytes int, duration time.Duration, err error) {
	if err != nil {
		b.GrowthErrors.Add(1)
		return
	}
	b.Reallocations.Add(1)
	b.GrowthTotalNanos.Add(duration.Nanoseconds())
	b.BytesReserved.Add(int64(bytes))

	// The previous region is released by the move, so live bytes track only
	// the new one. The element size cancels out of oldCap/newCap.
	if newCap > 0 {
		b.BytesLive.Add(int64(bytes) - int64(bytes)/int64(newCap)*int64(oldCap))
	}
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(bytes int) {
	b.Releases.Add(1)
	b.BytesLive.Add(-int64(bytes))
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	Reallocations  int64
	GrowthErrors   int64
	GrowthAvgNanos int64
	BytesReserved  int64
	BytesLive      int64
	Releases       int64
}

// GetStats returns a snapshot of the counters.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	reallocs := b.Reallocations.Load()
	var avg int64
	if reallocs > 0 {
		avg = b.GrowthTotalNanos.Load() / reallocs
	}
	return BasicMetricsStats{
		Reallocations:  reallocs,
		GrowthErrors:   b.GrowthErrors.Load(),
		GrowthAvgNanos: avg,
		BytesReserved:  b.BytesReserved.Load(),
		BytesLive:      b.BytesLive.Load(),
		Releases:       b.Releases.Load(),
	}
}
