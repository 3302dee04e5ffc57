package domain

import (
	"context"
	"log/slog"
)

// ResolveAddress fills in the location's address via the geocoder. Every
// failure degrades to the formatted coordinate string: a nil geocoder, a
// lookup error, and an empty result all produce a usable address
// (graceful degradation, never an error to the caller).
func ResolveAddress(ctx context.Context, loc Location, geocoder Geocoder, logger *slog.Logger) Location {
	if geocoder == nil {
		loc.Address = FormatCoordinates(loc)
		return loc
	}

	addr, err := geocoder.ReverseGeocode(ctx, loc.Lat, loc.Lng)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"lat", loc.Lat,
			"lng", loc.Lng,
			"error", err,
		)
		loc.Address = FormatCoordinates(loc)
		return loc
	}
	if addr == "" {
		loc.Address = FormatCoordinates(loc)
		return loc
	}

	loc.Address = addr
	return loc
}
