package nominatim

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helphub/helphub/internal/observability"
)

type fakeGeocoder struct {
	addr  string
	err   error
	calls int
}

func (f *fakeGeocoder) ReverseGeocode(_ context.Context, _, _ float64) (string, error) {
	f.calls++
	return f.addr, f.err
}

func TestCachedGeocoder_HitAndMiss(t *testing.T) {
	inner := &fakeGeocoder{addr: "Somewhere, NY"}
	cached := NewCachedGeocoder(inner, 10, observability.NewMetricsForTesting())

	addr, err := cached.ReverseGeocode(context.Background(), 40.7128, -74.0060)
	require.NoError(t, err)
	assert.Equal(t, "Somewhere, NY", addr)
	assert.Equal(t, 1, inner.calls)

	// Same coordinate: served from cache.
	_, err = cached.ReverseGeocode(context.Background(), 40.7128, -74.0060)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	// Different coordinate: miss.
	_, err = cached.ReverseGeocode(context.Background(), 41.0, -74.0)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedGeocoder_ErrorsNotCached(t *testing.T) {
	inner := &fakeGeocoder{err: errors.New("boom")}
	cached := NewCachedGeocoder(inner, 10, observability.NewMetricsForTesting())

	_, err := cached.ReverseGeocode(context.Background(), 1, 1)
	require.Error(t, err)
	_, err = cached.ReverseGeocode(context.Background(), 1, 1)
	require.Error(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedGeocoder_EmptyResultsNotCached(t *testing.T) {
	inner := &fakeGeocoder{}
	cached := NewCachedGeocoder(inner, 10, observability.NewMetricsForTesting())

	_, err := cached.ReverseGeocode(context.Background(), 1, 1)
	require.NoError(t, err)
	_, err = cached.ReverseGeocode(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls, "empty answers retried, not cached")
}

func TestLRUEviction(t *testing.T) {
	cache := newLRUCache(2)
	cache.put("a", "1")
	cache.put("b", "2")

	// Touch "a" so "b" is least recently used.
	_, ok := cache.get("a")
	require.True(t, ok)

	cache.put("c", "3")

	_, ok = cache.get("b")
	assert.False(t, ok, "least recently used entry evicted")
	_, ok = cache.get("a")
	assert.True(t, ok)
	_, ok = cache.get("c")
	assert.True(t, ok)
}

func TestLRUManyEntries(t *testing.T) {
	cache := newLRUCache(50)
	for i := range 200 {
		cache.put(fmt.Sprintf("k%d", i), "v")
	}
	assert.Len(t, cache.entries, 50)
}
