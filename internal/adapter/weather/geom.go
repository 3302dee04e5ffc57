package weather

import (
	"math"

	"github.com/golang/geo/s2"
)

// Region is the spherical area an alert applies to, built from a
// lat/lng bounding box.
type Region struct {
	loop *s2.Loop
}

// NewBoundingRegion builds a region from box corners, given as low/high
// latitude and longitude in degrees.
func NewBoundingRegion(latLo, latHi, lngLo, lngHi float64) Region {
	points := []s2.Point{
		s2.PointFromLatLng(s2.LatLngFromDegrees(latLo, lngLo)),
		s2.PointFromLatLng(s2.LatLngFromDegrees(latLo, lngHi)),
		s2.PointFromLatLng(s2.LatLngFromDegrees(latHi, lngHi)),
		s2.PointFromLatLng(s2.LatLngFromDegrees(latHi, lngLo)),
	}

	loop := s2.LoopFromPoints(points)
	// A loop wound the wrong way claims most of the sphere; flip it.
	if loop.Area() > 2*math.Pi {
		loop.Invert()
	}

	return Region{loop: loop}
}

// Covers reports whether the coordinate lies inside the region.
func (r Region) Covers(lat, lng float64) bool {
	if r.loop == nil {
		return false
	}
	pt := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng))
	return r.loop.ContainsPoint(pt)
}
