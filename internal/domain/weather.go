package domain

import "context"

// Conditions is a current-weather snapshot for the user's area.
type Conditions struct {
	Temperature float64 `json:"temperature"` // °F
	Condition   string  `json:"condition"`
	Humidity    float64 `json:"humidity"`    // percent
	WindSpeed   float64 `json:"windSpeed"`   // mph
	Visibility  float64 `json:"visibility"`  // miles
}

// WeatherProvider supplies alerts and conditions for a coordinate.
// Implementations may filter alerts to those covering the given point.
type WeatherProvider interface {
	Alerts(ctx context.Context, lat, lng float64) ([]WeatherAlert, error)
	Current(ctx context.Context, lat, lng float64) (Conditions, error)
}
