package grapevec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	m.RecordGrowth(0, 4, 32, 10*time.Microsecond, nil)
	m.RecordGrowth(4, 8, 64, 30*time.Microsecond, nil)
	m.RecordGrowth(8, 16, 128, time.Microsecond, errors.New("boom"))

	s := m.GetStats()
	assert.Equal(t, int64(2), s.Reallocations)
	assert.Equal(t, int64(1), s.GrowthErrors)
	assert.Equal(t, int64(20_000), s.GrowthAvgNanos)
	assert.Equal(t, int64(96), s.BytesReserved)
	assert.Equal(t, int64(64), s.BytesLive)

	m.RecordRelease(64)
	s = m.GetStats()
	assert.Equal(t, int64(1), s.Releases)
	assert.Equal(t, int64(0), s.BytesLive)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	m := &BasicMetricsCollector{}
	assert.Equal(t, BasicMetricsStats{}, m.GetStats())
}

func TestVector_RecordsMetrics(t *testing.T) {
	m := &BasicMetricsCollector{}
	v := New[int32](WithMetricsCollector(m))

	for i := range 5 {
		_ = v.Add(int32(i))
	}
	// 1, 2, 4, 8
	assert.Equal(t, int64(4), m.GetStats().Reallocations)
	assert.Equal(t, int64(32), m.GetStats().BytesLive)

	_ = v.Close()
	assert.Equal(t, int64(0), m.GetStats().BytesLive)
	assert.Equal(t, int64(1), m.GetStats().Releases)
}
