// Package nominatim implements domain.Geocoder against the public
// OpenStreetMap Nominatim reverse-geocoding endpoint.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/helphub/helphub/internal/observability"
)

// userAgent identifies the client per the Nominatim usage policy.
const userAgent = "helphub-coordination/1.0"

// Client performs reverse geocoding lookups.
type Client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a Nominatim client. Transient failures are retried
// twice with backoff inside the configured timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 2
	httpClient.Logger = nil
	httpClient.HTTPClient.Timeout = timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
		metrics:    metrics,
	}
}

// ReverseGeocode converts a coordinate pair to a display address. An
// empty string with a nil error means Nominatim had no answer; callers
// substitute the formatted-coordinate fallback either way.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{
		"format": {"json"},
		"lat":    {fmt.Sprintf("%.6f", lat)},
		"lon":    {fmt.Sprintf("%.6f", lng)},
	}
	fullURL := c.baseURL + "/reverse?" + params.Encode()

	start := time.Now()
	name, err := c.doRequest(ctx, fullURL)
	if c.metrics != nil {
		c.metrics.GeocodeDuration.Observe(time.Since(start).Seconds())
		switch {
		case err != nil:
			c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		case name == "":
			c.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		default:
			c.metrics.GeocodeRequests.WithLabelValues("success").Inc()
		}
	}
	return name, err
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("nominatim error: status %d: %s", resp.StatusCode, body)
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return parsed.DisplayName, nil
}

// Nominatim API response. Only the display name is consumed.
type response struct {
	DisplayName string `json:"display_name"`
}
