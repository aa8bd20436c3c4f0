package grapevec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CreateIsEmpty(t *testing.T) {
	f := NewFactory[float64]()

	v := f.Create()
	defer v.Close()

	assert.Equal(t, 0, v.Size())
	assert.Equal(t, 0, v.Capacity())
	assert.Equal(t, uintptr(0), v.Data())
	assert.Equal(t, BackendMmap, v.Stats().Backend)
}

func TestFactory_VectorsAreIndependent(t *testing.T) {
	f := NewFactory[int32](WithBackend(BackendHeap), WithMinCapacity(4))

	a := f.Create()
	defer a.Close()
	b := f.Create()
	defer b.Close()

	require.NoError(t, a.Add(1))
	require.NoError(t, a.Add(2))
	require.NoError(t, b.Add(9))

	assert.Equal(t, []int32{1, 2}, a.Slice())
	assert.Equal(t, []int32{9}, b.Slice())
	assert.Equal(t, 4, a.Capacity())
	assert.Equal(t, BackendHeap, b.Stats().Backend)
	assert.NotEqual(t, a.Data(), b.Data())
}

func TestFactory_SharedMetrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	f := NewFactory[int64](WithMetricsCollector(metrics), WithBackend(BackendHeap))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := f.Create()
			for i := range 100 {
				_ = v.Add(int64(i))
			}
			_ = v.Close()
		}()
	}
	wg.Wait()

	stats := metrics.GetStats()
	// 1, 2, 4, ..., 128: eight reallocations per vector.
	assert.Equal(t, int64(8*8), stats.Reallocations)
	assert.Equal(t, int64(8), stats.Releases)
	assert.Equal(t, int64(0), stats.BytesLive)
}

func TestFactory_NilOptions(t *testing.T) {
	v := New[uint8](nil, WithLogger(nil), WithMetricsCollector(nil))
	defer v.Close()

	require.NoError(t, v.Add(1))
	assert.Equal(t, 1, v.Size())
}
