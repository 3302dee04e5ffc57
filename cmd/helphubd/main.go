// Command helphubd runs the disaster-relief coordination daemon: it
// restores persisted state, seeds the demonstration content, keeps the
// weather alerts and connectivity flag fresh, and serves the
// operational HTTP endpoints.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/helphub/helphub/internal/adapter/httpapi"
	"github.com/helphub/helphub/internal/adapter/nominatim"
	"github.com/helphub/helphub/internal/adapter/weather"
	"github.com/helphub/helphub/internal/config"
	"github.com/helphub/helphub/internal/domain"
	"github.com/helphub/helphub/internal/location"
	"github.com/helphub/helphub/internal/observability"
	"github.com/helphub/helphub/internal/refresh"
	"github.com/helphub/helphub/internal/storage"
	"github.com/helphub/helphub/internal/store"
)

func main() {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	db, err := storage.Open(cfg.DatabasePath, logger)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}

	st := store.New(db, logger, metrics)
	st.Load(context.Background())
	st.Seed()

	// Reverse geocoding is feature-flagged via GEOCODE_ENABLED.
	var geocoder domain.Geocoder
	if cfg.GeocodeEnabled {
		client := nominatim.NewClient(cfg.GeocodeBaseURL, cfg.GeocodeTimeout, logger, metrics)
		geocoder = nominatim.NewCachedGeocoder(client, cfg.GeocodeCacheSize, metrics)
		logger.Info("reverse geocoding enabled", "base_url", cfg.GeocodeBaseURL, "cache_size", cfg.GeocodeCacheSize)
	} else {
		logger.Info("reverse geocoding disabled")
	}

	acquirer := location.NewAcquirer(
		location.StaticProvider{Location: domain.Location{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng}},
		location.Options{
			HighAccuracy: true,
			Timeout:      cfg.LocationTimeout,
			MaximumAge:   cfg.LocationMaxAge,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initial position fix. Failure is tolerated; the refresher falls
	// back to the configured default coordinate.
	if loc, err := acquirer.CurrentLocation(ctx); err != nil {
		logger.Warn("initial position fix failed", "error", err)
	} else {
		loc = domain.ResolveAddress(ctx, loc, geocoder, logger)
		st.Dispatch(ctx, store.SetUserLocation{Location: loc})
		logger.Info("location acquired", "lat", loc.Lat, "lng", loc.Lng, "address", loc.Address)
	}

	refresher := refresh.New(st, weather.NewStubProvider(), acquirer, refresh.Config{
		WeatherInterval:      cfg.WeatherRefreshInterval,
		ConnectivityInterval: cfg.ConnectivityInterval,
		ProbeURL:             cfg.ConnectivityProbeURL,
		DefaultLocation:      domain.Location{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng},
	}, logger, metrics)
	refresher.Start()

	srv := httpapi.NewServer(cfg.HTTPAddr, st, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Stop the refresher before the store's backing database goes away.
	refresher.Stop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("shutdown complete")
}
