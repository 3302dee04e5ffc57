package domain

import "context"

// Geocoder resolves coordinates to a human-readable address.
type Geocoder interface {
	// ReverseGeocode converts a coordinate pair to a display address.
	// An empty string with a nil error means the provider had no answer.
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}
