package domain

import (
	"errors"
	"fmt"
	"math"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// ErrInvalidCoordinate is returned for latitudes outside ±90° or
// longitudes outside ±180°.
var ErrInvalidCoordinate = errors.New("coordinate out of range")

// Distance returns the great-circle distance between two locations in
// kilometers. Pure haversine: no validation, no failure mode; identical
// points yield 0 and the result is symmetric in its arguments.
func Distance(a, b Location) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Validate rejects geographically meaningless coordinates. Distance itself
// accepts anything; validation happens where user input enters the system.
func (l Location) Validate() error {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lng) {
		return fmt.Errorf("%w: NaN", ErrInvalidCoordinate)
	}
	if l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidCoordinate, l.Lat)
	}
	if l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidCoordinate, l.Lng)
	}
	return nil
}

// FormatCoordinates renders a location as "lat, lng" with four decimal
// places — the fallback display string when reverse geocoding fails.
func FormatCoordinates(l Location) string {
	return fmt.Sprintf("%.4f, %.4f", l.Lat, l.Lng)
}
