package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// coordination core.
type Metrics struct {
	ActionsDispatched *prometheus.CounterVec // label: action
	PersistErrors     prometheus.Counter
	OpenRequests      prometheus.Gauge

	// Geocoding metrics.
	GeocodeRequests *prometheus.CounterVec // label: outcome={success,error,empty}
	GeocodeCache    *prometheus.CounterVec // label: result={hit,miss}
	GeocodeDuration prometheus.Histogram

	// Refresh metrics.
	WeatherRefreshes *prometheus.CounterVec // label: outcome={success,error}
	Online           prometheus.Gauge       // 1 when the connectivity probe last succeeded
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ActionsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "helphub",
			Name:      "actions_dispatched_total",
			Help:      "Store actions applied, by action name.",
		}, []string{"action"}),
		PersistErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "helphub",
			Name:      "persist_errors_total",
			Help:      "Failed attempts to mirror a state slice to local storage.",
		}),
		OpenRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "helphub",
			Name:      "open_help_requests",
			Help:      "Help requests currently in the open state.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "helphub",
			Name:      "geocode_requests_total",
			Help:      "Reverse-geocoding lookups by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "helphub",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "helphub",
			Name:      "geocode_duration_seconds",
			Help:      "Reverse-geocoding API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		WeatherRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "helphub",
			Name:      "weather_refreshes_total",
			Help:      "Weather/alert refresh cycles by outcome.",
		}, []string{"outcome"}),
		Online: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "helphub",
			Name:      "online",
			Help:      "1 when the last connectivity probe succeeded, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.ActionsDispatched,
		m.PersistErrors,
		m.OpenRequests,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeDuration,
		m.WeatherRefreshes,
		m.Online,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ActionsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "helphub", Name: "actions_dispatched_total"}, []string{"action"}),
		PersistErrors:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "helphub", Name: "persist_errors_total"}),
		OpenRequests:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "helphub", Name: "open_help_requests"}),
		GeocodeRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "helphub", Name: "geocode_requests_total"}, []string{"outcome"}),
		GeocodeCache:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "helphub", Name: "geocode_cache_total"}, []string{"result"}),
		GeocodeDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "helphub", Name: "geocode_duration_seconds"}),
		WeatherRefreshes:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "helphub", Name: "weather_refreshes_total"}, []string{"outcome"}),
		Online:            prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "helphub", Name: "online"}),
	}
}
