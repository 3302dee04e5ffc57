package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeGeocoder struct {
	address string
	err     error
	calls   int
}

func (f *fakeGeocoder) ReverseGeocode(_ context.Context, _, _ float64) (string, error) {
	f.calls++
	return f.address, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveAddress(t *testing.T) {
	loc := Location{Lat: 40.7128, Lng: -74.0060}

	t.Run("successful lookup", func(t *testing.T) {
		g := &fakeGeocoder{address: "City Hall, New York, NY"}
		got := ResolveAddress(context.Background(), loc, g, discardLogger())
		assert.Equal(t, "City Hall, New York, NY", got.Address)
		assert.Equal(t, 1, g.calls)
	})

	t.Run("nil geocoder falls back to coordinates", func(t *testing.T) {
		got := ResolveAddress(context.Background(), loc, nil, discardLogger())
		assert.Equal(t, "40.7128, -74.0060", got.Address)
	})

	t.Run("lookup error falls back to coordinates", func(t *testing.T) {
		g := &fakeGeocoder{err: errors.New("network down")}
		got := ResolveAddress(context.Background(), loc, g, discardLogger())
		assert.Equal(t, "40.7128, -74.0060", got.Address)
	})

	t.Run("empty result falls back to coordinates", func(t *testing.T) {
		g := &fakeGeocoder{}
		got := ResolveAddress(context.Background(), loc, g, discardLogger())
		assert.Equal(t, "40.7128, -74.0060", got.Address)
	})

	t.Run("coordinates preserved", func(t *testing.T) {
		g := &fakeGeocoder{address: "somewhere"}
		got := ResolveAddress(context.Background(), loc, g, discardLogger())
		assert.Equal(t, loc.Lat, got.Lat)
		assert.Equal(t, loc.Lng, got.Lng)
	})
}
