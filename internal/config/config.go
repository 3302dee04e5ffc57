package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Local durable storage.
	DatabasePath string

	// Default coordinate used when no position fix can be acquired.
	DefaultLat float64
	DefaultLng float64

	// Position acquisition.
	LocationTimeout time.Duration
	LocationMaxAge  time.Duration

	// Reverse geocoding.
	GeocodeEnabled   bool
	GeocodeBaseURL   string
	GeocodeTimeout   time.Duration
	GeocodeCacheSize int

	// Periodic refresh.
	WeatherRefreshInterval time.Duration
	ConnectivityInterval   time.Duration
	ConnectivityProbeURL   string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	locationTimeout, err := parseDuration("LOCATION_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	locationMaxAge, err := parseDuration("LOCATION_MAX_AGE", "10m")
	if err != nil {
		return nil, err
	}
	geocodeTimeout, err := parseDuration("GEOCODE_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	weatherInterval, err := parseDuration("WEATHER_REFRESH_INTERVAL", "5m")
	if err != nil {
		return nil, err
	}
	connectivityInterval, err := parseDuration("CONNECTIVITY_INTERVAL", "30s")
	if err != nil {
		return nil, err
	}

	defaultLat, err := parseFloat("DEFAULT_LAT", 40.7128)
	if err != nil {
		return nil, err
	}
	defaultLng, err := parseFloat("DEFAULT_LNG", -74.0060)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		DatabasePath: envOrDefault("DB_PATH", "helphub.db"),

		DefaultLat: defaultLat,
		DefaultLng: defaultLng,

		LocationTimeout: locationTimeout,
		LocationMaxAge:  locationMaxAge,

		GeocodeEnabled:   envOrDefault("GEOCODE_ENABLED", "true") == "true",
		GeocodeBaseURL:   envOrDefault("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocodeTimeout:   geocodeTimeout,
		GeocodeCacheSize: parseGeocodeCacheSize(),

		WeatherRefreshInterval: weatherInterval,
		ConnectivityInterval:   connectivityInterval,
		ConnectivityProbeURL:   envOrDefault("CONNECTIVITY_PROBE_URL", "https://www.gstatic.com/generate_204"),
	}

	if cfg.DatabasePath == "" {
		return nil, errors.New("DB_PATH is required")
	}
	if cfg.DefaultLat < -90 || cfg.DefaultLat > 90 {
		return nil, errors.New("DEFAULT_LAT out of range")
	}
	if cfg.DefaultLng < -180 || cfg.DefaultLng > 180 {
		return nil, errors.New("DEFAULT_LNG out of range")
	}
	if cfg.GeocodeEnabled && cfg.GeocodeBaseURL == "" {
		return nil, errors.New("GEOCODE_ENABLED is true but GEOCODE_BASE_URL is empty")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func parseFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return v, nil
}

func parseGeocodeCacheSize() int {
	if s := os.Getenv("GEOCODE_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}
