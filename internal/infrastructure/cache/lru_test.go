package cache

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_AddKeepsFirstValue(t *testing.T) {
	c := NewLRU[string, int](3)

	v, added := c.Add("a", 1)
	assert.True(t, added)
	assert.Equal(t, 1, v)

	v, added = c.Add("a", 2)
	assert.False(t, added)
	assert.Equal(t, 1, v)

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, got)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string, int](2)

	c.Add("a", 1)
	c.Add("b", 2)
	// Reading "a" makes "b" the eviction candidate.
	c.Get("a")
	c.Add("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestLRU_ZeroCapacity(t *testing.T) {
	c := NewLRU[string, int](0)

	c.Add("a", 1)
	c.Add("b", 2)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_GetOrAdd(t *testing.T) {
	c := NewLRU[string, string](4)
	calls := 0
	build := func() string {
		calls++
		return "compiled"
	}

	assert.Equal(t, "compiled", c.GetOrAdd("x > 1", build))
	assert.Equal(t, "compiled", c.GetOrAdd("x > 1", build))
	assert.Equal(t, 1, calls)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 1, stats.Len)
}

func TestLRU_GetOrAddConcurrentSameKey(t *testing.T) {
	c := NewLRU[string, *int](8)
	var builds atomic.Int32
	var wg sync.WaitGroup

	results := make([]*int, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.GetOrAdd("k", func() *int {
				builds.Add(1)
				v := i
				return &v
			})
		}(i)
	}
	wg.Wait()

	require.GreaterOrEqual(t, builds.Load(), int32(1))
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
	assert.Equal(t, 1, c.Len())
}
