package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nyc    = Location{Lat: 40.7128, Lng: -74.0060}
	harlem = Location{Lat: 40.8116, Lng: -73.9465}
)

func TestDistance_IdenticalPointsAreZero(t *testing.T) {
	assert.Zero(t, Distance(nyc, nyc))
	assert.Zero(t, Distance(Location{}, Location{}))
}

func TestDistance_Symmetry(t *testing.T) {
	assert.InDelta(t, Distance(nyc, harlem), Distance(harlem, nyc), 1e-9)
}

func TestDistance_ReferenceValues(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Location
		expected float64
	}{
		// One degree of longitude at the equator: 6371 km * π/180.
		{"one degree at equator", Location{Lat: 0, Lng: 0}, Location{Lat: 0, Lng: 1}, 111.19},
		{"one degree of latitude", Location{Lat: 0, Lng: 0}, Location{Lat: 1, Lng: 0}, 111.19},
		{"lower manhattan to harlem", nyc, harlem, 12.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), 0.1)
		})
	}
}

func TestDistance_NonNegative(t *testing.T) {
	pairs := []struct{ a, b Location }{
		{Location{Lat: -33.87, Lng: 151.21}, Location{Lat: 51.51, Lng: -0.13}},
		{Location{Lat: 90, Lng: 0}, Location{Lat: -90, Lng: 0}},
	}
	for _, p := range pairs {
		assert.GreaterOrEqual(t, Distance(p.a, p.b), 0.0)
	}
}

func TestLocationValidate(t *testing.T) {
	tests := []struct {
		name    string
		loc     Location
		wantErr bool
	}{
		{"origin", Location{}, false},
		{"normal", nyc, false},
		{"lat boundary", Location{Lat: 90, Lng: 180}, false},
		{"lat too high", Location{Lat: 90.1}, true},
		{"lat too low", Location{Lat: -91}, true},
		{"lng too high", Location{Lng: 180.5}, true},
		{"lng too low", Location{Lng: -200}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.loc.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCoordinate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "40.7128, -74.0060", FormatCoordinates(nyc))
	assert.Equal(t, "0.0000, 0.0000", FormatCoordinates(Location{}))
}
