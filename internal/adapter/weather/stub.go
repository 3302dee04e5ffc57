// Package weather provides the alert/conditions source. The shipped
// provider serves fixed demonstration data; the contract is "given a
// coordinate, return zero or more alerts and a conditions record".
package weather

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/helphub/helphub/internal/domain"
)

// stubAlert pairs a demo alert template with the region it applies to.
// Start and end offsets are relative to the query time.
type stubAlert struct {
	id          string
	alertType   domain.AlertType
	severity    domain.AlertSeverity
	title       string
	description string
	startOffset time.Duration
	endOffset   time.Duration
	region      Region
}

// StubProvider implements domain.WeatherProvider with demonstration
// values. Alerts are filtered to those whose region covers the queried
// coordinate.
type StubProvider struct {
	clock  clockwork.Clock
	alerts []stubAlert
}

// NewStubProvider creates a stub provider over the demo alert set.
func NewStubProvider() *StubProvider {
	return &StubProvider{
		clock: clockwork.NewRealClock(),
		alerts: []stubAlert{
			{
				id:          "alert-1",
				alertType:   domain.AlertWarning,
				severity:    domain.SeveritySevere,
				title:       "Flash Flood Warning",
				description: "Flash flooding is occurring or expected to begin shortly. Move to higher ground immediately.",
				startOffset: 0,
				endOffset:   6 * time.Hour,
				// NYC metro area.
				region: NewBoundingRegion(40.3, 41.2, -74.5, -73.4),
			},
			{
				id:          "alert-2",
				alertType:   domain.AlertWatch,
				severity:    domain.SeverityModerate,
				title:       "High Wind Advisory",
				description: "Sustained winds of 25-35 mph with gusts up to 50 mph expected.",
				startOffset: 2 * time.Hour,
				endOffset:   12 * time.Hour,
				// Wider northeast corridor.
				region: NewBoundingRegion(39.0, 43.0, -76.0, -71.0),
			},
		},
	}
}

// WithClock swaps the time source, for tests and fixture generation.
func (p *StubProvider) WithClock(c clockwork.Clock) *StubProvider {
	p.clock = c
	return p
}

// Alerts returns the demo alerts covering the given coordinate.
func (p *StubProvider) Alerts(ctx context.Context, lat, lng float64) ([]domain.WeatherAlert, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := p.clock.Now().UTC()
	out := make([]domain.WeatherAlert, 0, len(p.alerts))
	for _, a := range p.alerts {
		if !a.region.Covers(lat, lng) {
			continue
		}
		out = append(out, domain.WeatherAlert{
			ID:          a.id,
			Type:        a.alertType,
			Severity:    a.severity,
			Title:       a.title,
			Description: a.description,
			StartTime:   now.Add(a.startOffset),
			EndTime:     now.Add(a.endOffset),
		})
	}
	return out, nil
}

// Current returns fixed demonstration conditions.
func (p *StubProvider) Current(ctx context.Context, _, _ float64) (domain.Conditions, error) {
	if err := ctx.Err(); err != nil {
		return domain.Conditions{}, err
	}
	return domain.Conditions{
		Temperature: 72,
		Condition:   "Partly Cloudy",
		Humidity:    65,
		WindSpeed:   15,
		Visibility:  10,
	}, nil
}
