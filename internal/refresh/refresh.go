// Package refresh owns the periodic background work: re-querying the
// weather provider and probing connectivity. Jobs run on a cron
// scheduler and publish their results to the store.
package refresh

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/robfig/cron/v3"

	"github.com/helphub/helphub/internal/domain"
	"github.com/helphub/helphub/internal/location"
	"github.com/helphub/helphub/internal/observability"
	"github.com/helphub/helphub/internal/store"
)

// jobTimeout bounds a single refresh or probe cycle.
const jobTimeout = 10 * time.Second

// Config holds the refresh schedule and probe target.
type Config struct {
	WeatherInterval      time.Duration
	ConnectivityInterval time.Duration
	ProbeURL             string

	// Used when no position fix can be acquired.
	DefaultLocation domain.Location
}

// Refresher schedules the weather and connectivity jobs. Start runs each
// job once immediately so the store is populated before the first tick.
type Refresher struct {
	store    *store.Store
	weather  domain.WeatherProvider
	acquirer *location.Acquirer
	cfg      Config
	probe    *retryablehttp.Client
	logger   *slog.Logger
	metrics  *observability.Metrics

	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc

	mu             sync.Mutex
	lastConditions *domain.Conditions
	lastOnline     *bool
}

// New creates a refresher. acquirer may be nil, in which case the
// configured default location is used for every refresh.
func New(st *store.Store, weather domain.WeatherProvider, acquirer *location.Acquirer, cfg Config, logger *slog.Logger, metrics *observability.Metrics) *Refresher {
	probe := retryablehttp.NewClient()
	probe.RetryMax = 1
	probe.Logger = nil
	probe.HTTPClient.Timeout = jobTimeout

	ctx, cancel := context.WithCancel(context.Background())

	return &Refresher{
		store:    st,
		weather:  weather,
		acquirer: acquirer,
		cfg:      cfg,
		probe:    probe,
		logger:   logger,
		metrics:  metrics,
		cron:     cron.New(),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start primes both jobs and begins the schedule.
func (r *Refresher) Start() {
	r.cron.Schedule(cron.Every(r.cfg.WeatherInterval), cron.FuncJob(r.runWeather))
	r.cron.Schedule(cron.Every(r.cfg.ConnectivityInterval), cron.FuncJob(r.runConnectivity))

	r.runConnectivity()
	r.runWeather()

	r.cron.Start()
	r.logger.Info("refresh scheduler started",
		"weather_interval", r.cfg.WeatherInterval,
		"connectivity_interval", r.cfg.ConnectivityInterval)
}

// Stop cancels in-flight jobs and waits for running ones to return.
// Results that arrive after Stop are discarded, not dispatched.
func (r *Refresher) Stop() {
	r.cancel()
	<-r.cron.Stop().Done()
	r.logger.Info("refresh scheduler stopped")
}

// Conditions returns the most recent current-weather snapshot, if any
// refresh has succeeded yet.
func (r *Refresher) Conditions() (domain.Conditions, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastConditions == nil {
		return domain.Conditions{}, false
	}
	return *r.lastConditions, true
}

func (r *Refresher) runWeather() {
	ctx, cancel := context.WithTimeout(r.ctx, jobTimeout)
	defer cancel()
	r.refreshWeather(ctx)
}

func (r *Refresher) refreshWeather(ctx context.Context) {
	loc := r.currentLocation(ctx)

	alerts, err := r.weather.Alerts(ctx, loc.Lat, loc.Lng)
	if err != nil {
		if r.metrics != nil {
			r.metrics.WeatherRefreshes.WithLabelValues("error").Inc()
		}
		r.logger.Warn("weather refresh failed", "error", err)
		return
	}

	if cond, err := r.weather.Current(ctx, loc.Lat, loc.Lng); err != nil {
		r.logger.Warn("current conditions unavailable", "error", err)
	} else {
		r.mu.Lock()
		r.lastConditions = &cond
		r.mu.Unlock()
	}

	// Shut down while fetching: drop the result.
	if r.ctx.Err() != nil {
		return
	}

	r.store.Dispatch(ctx, store.SetWeatherAlerts{Alerts: alerts})
	if r.metrics != nil {
		r.metrics.WeatherRefreshes.WithLabelValues("success").Inc()
	}
	r.logger.Debug("weather refreshed", "alerts", len(alerts))
}

func (r *Refresher) currentLocation(ctx context.Context) domain.Location {
	if r.acquirer == nil {
		return r.cfg.DefaultLocation
	}
	loc, err := r.acquirer.CurrentLocation(ctx)
	if err != nil {
		r.logger.Warn("position unavailable, using default location", "error", err)
		return r.cfg.DefaultLocation
	}
	return loc
}

func (r *Refresher) runConnectivity() {
	ctx, cancel := context.WithTimeout(r.ctx, jobTimeout)
	defer cancel()
	r.probeConnectivity(ctx)
}

func (r *Refresher) probeConnectivity(ctx context.Context) {
	online := r.probeOnce(ctx)

	if r.metrics != nil {
		if online {
			r.metrics.Online.Set(1)
		} else {
			r.metrics.Online.Set(0)
		}
	}

	r.mu.Lock()
	changed := r.lastOnline == nil || *r.lastOnline != online
	r.lastOnline = &online
	r.mu.Unlock()

	if !changed || r.ctx.Err() != nil {
		return
	}
	r.store.Dispatch(ctx, store.SetOffline{Offline: !online})
	r.logger.Info("connectivity changed", "online", online)
}

func (r *Refresher) probeOnce(ctx context.Context) bool {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodHead, r.cfg.ProbeURL, nil)
	if err != nil {
		r.logger.Warn("connectivity probe request invalid", "url", r.cfg.ProbeURL, "error", err)
		return false
	}

	resp, err := r.probe.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close() //nolint:errcheck

	return resp.StatusCode < 400
}
