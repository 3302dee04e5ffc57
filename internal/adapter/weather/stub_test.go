package weather

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helphub/helphub/internal/domain"
)

func TestRegionCovers(t *testing.T) {
	region := NewBoundingRegion(40.0, 41.0, -75.0, -73.0)

	assert.True(t, region.Covers(40.5, -74.0), "center of box")
	assert.True(t, region.Covers(40.1, -74.9), "near corner")
	assert.False(t, region.Covers(42.0, -74.0), "north of box")
	assert.False(t, region.Covers(40.5, -72.0), "east of box")
	assert.False(t, region.Covers(-40.5, 74.0), "antipode")
}

func TestRegionZeroValue(t *testing.T) {
	var region Region
	assert.False(t, region.Covers(0, 0))
}

func TestStubAlerts_InsideBothRegions(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := NewStubProvider().WithClock(clockwork.NewFakeClockAt(now))

	// Lower Manhattan sits inside both demo regions.
	alerts, err := provider.Alerts(context.Background(), 40.7128, -74.0060)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	flood := alerts[0]
	assert.Equal(t, "alert-1", flood.ID)
	assert.Equal(t, domain.AlertWarning, flood.Type)
	assert.Equal(t, domain.SeveritySevere, flood.Severity)
	assert.Equal(t, "Flash Flood Warning", flood.Title)
	assert.Equal(t, now, flood.StartTime)
	assert.Equal(t, now.Add(6*time.Hour), flood.EndTime)

	wind := alerts[1]
	assert.Equal(t, "alert-2", wind.ID)
	assert.Equal(t, domain.AlertWatch, wind.Type)
	assert.Equal(t, now.Add(2*time.Hour), wind.StartTime)
	assert.Equal(t, now.Add(12*time.Hour), wind.EndTime)
}

func TestStubAlerts_OutsideMetroRegion(t *testing.T) {
	provider := NewStubProvider()

	// Albany is outside the metro box but inside the wider corridor.
	alerts, err := provider.Alerts(context.Background(), 42.65, -73.75)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "alert-2", alerts[0].ID)
}

func TestStubAlerts_OutsideAllRegions(t *testing.T) {
	provider := NewStubProvider()

	// Denver is covered by neither region.
	alerts, err := provider.Alerts(context.Background(), 39.74, -104.99)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestStubAlerts_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStubProvider().Alerts(ctx, 40.7128, -74.0060)
	require.Error(t, err)
}

func TestStubCurrent(t *testing.T) {
	cond, err := NewStubProvider().Current(context.Background(), 40.7128, -74.0060)
	require.NoError(t, err)

	assert.Equal(t, 72.0, cond.Temperature)
	assert.Equal(t, "Partly Cloudy", cond.Condition)
	assert.Equal(t, 65.0, cond.Humidity)
	assert.Equal(t, 15.0, cond.WindSpeed)
	assert.Equal(t, 10.0, cond.Visibility)
}
