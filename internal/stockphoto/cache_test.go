package stockphoto_test

import (
	"guidiqo/internal/stockphoto"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTTLCache_GetSetExpire(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := stockphoto.NewTTLCache[string, int](time.Minute)

	_, ok := c.Get("a", now)
	require.False(t, ok)

	c.Set("a", 1, now)
	v, ok := c.Get("a", now.Add(59*time.Second))
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = c.Get("a", now.Add(time.Minute))
	require.False(t, ok, "entry expires exactly at TTL")
	require.Equal(t, 1, c.Len(), "Get does not evict")
}

func TestTTLCache_SetRestartsTTL(t *testing.T) {
	now := time.Now()
	c := stockphoto.NewTTLCache[string, string](time.Minute)
	c.Set("k", "old", now)
	c.Set("k", "new", now.Add(50*time.Second))

	v, ok := c.Get("k", now.Add(90*time.Second))
	require.True(t, ok)
	require.Equal(t, "new", v)
}

func TestTTLCache_Sweep(t *testing.T) {
	now := time.Now()
	c := stockphoto.NewTTLCache[int, int](time.Minute)
	c.Set(1, 1, now)
	c.Set(2, 2, now.Add(30*time.Second))
	c.Set(3, 3, now.Add(2*time.Minute))

	require.Equal(t, 2, c.Sweep(now.Add(90*time.Second)))
	require.Equal(t, 1, c.Len())
	_, ok := c.Get(3, now.Add(2*time.Minute))
	require.True(t, ok)
}

func TestTTLCache_Concurrent(t *testing.T) {
	now := time.Now()
	c := stockphoto.NewTTLCache[int, int](time.Minute)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Set(i, i, now)
			_, _ = c.Get(i, now)
			c.Sweep(now)
		}()
	}
	wg.Wait()
	require.Equal(t, 50, c.Len())
}
