package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "helphub.db", cfg.DatabasePath)
	assert.InDelta(t, 40.7128, cfg.DefaultLat, 1e-9)
	assert.InDelta(t, -74.0060, cfg.DefaultLng, 1e-9)
	assert.Equal(t, 10*time.Second, cfg.LocationTimeout)
	assert.Equal(t, 10*time.Minute, cfg.LocationMaxAge)
	assert.True(t, cfg.GeocodeEnabled)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.GeocodeBaseURL)
	assert.Equal(t, 5*time.Second, cfg.GeocodeTimeout)
	assert.Equal(t, 1000, cfg.GeocodeCacheSize)
	assert.Equal(t, 5*time.Minute, cfg.WeatherRefreshInterval)
	assert.Equal(t, 30*time.Second, cfg.ConnectivityInterval)
	assert.NotEmpty(t, cfg.ConnectivityProbeURL)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("DB_PATH", "/tmp/state.db")
	t.Setenv("DEFAULT_LAT", "34.05")
	t.Setenv("DEFAULT_LNG", "-118.24")
	t.Setenv("LOCATION_TIMEOUT", "2s")
	t.Setenv("LOCATION_MAX_AGE", "1m")
	t.Setenv("GEOCODE_ENABLED", "false")
	t.Setenv("GEOCODE_TIMEOUT", "1s")
	t.Setenv("GEOCODE_CACHE_SIZE", "50")
	t.Setenv("WEATHER_REFRESH_INTERVAL", "1m")
	t.Setenv("CONNECTIVITY_INTERVAL", "10s")
	t.Setenv("CONNECTIVITY_PROBE_URL", "http://probe.local/204")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/tmp/state.db", cfg.DatabasePath)
	assert.InDelta(t, 34.05, cfg.DefaultLat, 1e-9)
	assert.InDelta(t, -118.24, cfg.DefaultLng, 1e-9)
	assert.Equal(t, 2*time.Second, cfg.LocationTimeout)
	assert.Equal(t, time.Minute, cfg.LocationMaxAge)
	assert.False(t, cfg.GeocodeEnabled)
	assert.Equal(t, time.Second, cfg.GeocodeTimeout)
	assert.Equal(t, 50, cfg.GeocodeCacheSize)
	assert.Equal(t, time.Minute, cfg.WeatherRefreshInterval)
	assert.Equal(t, 10*time.Second, cfg.ConnectivityInterval)
	assert.Equal(t, "http://probe.local/204", cfg.ConnectivityProbeURL)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeLocationTimeout(t *testing.T) {
	t.Setenv("LOCATION_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOCATION_TIMEOUT")
}

func TestLoad_InvalidDefaultLat(t *testing.T) {
	t.Setenv("DEFAULT_LAT", "95")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_LAT")
}

func TestLoad_NonNumericDefaultLng(t *testing.T) {
	t.Setenv("DEFAULT_LNG", "west")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_LNG")
}

func TestLoad_BadCacheSizeFallsBack(t *testing.T) {
	t.Setenv("GEOCODE_CACHE_SIZE", "zero")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.GeocodeCacheSize)
}
