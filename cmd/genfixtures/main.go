// Command genfixtures generates the demonstration JSON fixtures used by
// test suites and demo deployments. It runs requests through the actual
// domain lifecycle so the fixtures match real daemon behavior.
//
// Usage:
//
//	go run ./cmd/genfixtures -out data/fixtures
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/helphub/helphub/internal/adapter/weather"
	"github.com/helphub/helphub/internal/domain"
	"github.com/helphub/helphub/internal/store"
)

// baseTime keeps generated timestamps reproducible across runs.
var baseTime = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out", "", "output directory for fixture JSON files")
	flag.Parse()

	if *outDir == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	// Fixed clock for reproducible timestamps. Request IDs stay random.
	fc := clockwork.NewFakeClockAt(baseTime)
	domain.SetClock(fc)
	defer domain.SetClock(nil)

	volunteers := demoVolunteers()

	requests, err := demoRequests(volunteers, fc)
	if err != nil {
		return fmt.Errorf("generating help requests: %w", err)
	}

	provider := weather.NewStubProvider().WithClock(clockwork.NewFakeClockAt(baseTime))
	alerts, err := provider.Alerts(context.Background(), 40.7128, -74.0060)
	if err != nil {
		return fmt.Errorf("generating alerts: %w", err)
	}
	conditions, err := provider.Current(context.Background(), 40.7128, -74.0060)
	if err != nil {
		return fmt.Errorf("generating conditions: %w", err)
	}

	fixtures := []struct {
		file string
		data any
	}{
		{"help_requests.json", requests},
		{"volunteers.json", volunteers},
		{"safety_tips.json", store.DemoSafetyTips()},
		{"relief_centers.json", store.DemoReliefCenters()},
		{"weather_alerts.json", alerts},
		{"conditions.json", conditions},
	}

	for _, f := range fixtures {
		path := filepath.Join(*outDir, f.file)
		if err := writeJSON(path, f.data); err != nil {
			return fmt.Errorf("writing %s: %w", f.file, err)
		}
		log.Printf("wrote %s", path)
	}

	printStats(requests, alerts)
	return nil
}

// demoRequests builds a request set covering every status the lifecycle
// can produce, using the real transition code. The clock advances between
// requests so CreatedAt values differ.
func demoRequests(volunteers []domain.Volunteer, fc *clockwork.FakeClock) ([]domain.HelpRequest, error) {
	defs := []struct {
		params domain.NewRequestParams
		status domain.RequestStatus
		helper *domain.Volunteer
	}{
		{
			params: domain.NewRequestParams{
				Type:             domain.TypeMedical,
				Urgency:          domain.UrgencyCritical,
				Title:            "Insulin needed urgently",
				Description:      "Diabetic patient out of insulin, housebound since the flooding.",
				Location:         domain.Location{Lat: 40.7282, Lng: -73.9942, Address: "Lower East Side, New York"},
				RequesterName:    "Maria Santos",
				RequesterContact: "+1-555-0201",
			},
			status: domain.StatusOpen,
		},
		{
			params: domain.NewRequestParams{
				Type:             domain.TypeFood,
				Urgency:          domain.UrgencyHigh,
				Title:            "Family of five without food",
				Description:      "Supplies ran out two days ago, roads still impassable.",
				Location:         domain.Location{Lat: 40.6782, Lng: -73.9442, Address: "Brooklyn, New York"},
				RequesterName:    "James Okafor",
				RequesterContact: "+1-555-0202",
			},
			status: domain.StatusAccepted,
			helper: &volunteers[0],
		},
		{
			params: domain.NewRequestParams{
				Type:             domain.TypeEvacuation,
				Urgency:          domain.UrgencyCritical,
				Title:            "Elderly couple needs evacuation",
				Description:      "Second floor apartment, water rising in the lobby.",
				Location:         domain.Location{Lat: 40.7614, Lng: -73.9776, Address: "Midtown, New York"},
				RequesterName:    "Ellen Park",
				RequesterContact: "+1-555-0203",
			},
			status: domain.StatusEnRoute,
			helper: &volunteers[1],
		},
		{
			params: domain.NewRequestParams{
				Type:             domain.TypeShelter,
				Urgency:          domain.UrgencyMedium,
				Title:            "Temporary housing needed",
				Description:      "Apartment uninhabitable after the storm.",
				Location:         domain.Location{Lat: 40.8448, Lng: -73.8648, Address: "Bronx, New York"},
				RequesterName:    "Dmitri Volkov",
				RequesterContact: "+1-555-0204",
			},
			status: domain.StatusResolved,
			helper: &volunteers[0],
		},
		{
			params: domain.NewRequestParams{
				Type:             domain.TypeSupplies,
				Urgency:          domain.UrgencyLow,
				Title:            "Batteries and flashlights",
				Description:      "Power expected back tomorrow, requesting anyway to be safe.",
				Location:         domain.Location{Lat: 40.7831, Lng: -73.9712, Address: "Upper West Side, New York"},
				RequesterName:    "Priya Nair",
				RequesterContact: "+1-555-0205",
			},
			status: domain.StatusCancelled,
		},
	}

	requests := make([]domain.HelpRequest, 0, len(defs))
	for i, d := range defs {
		req, err := domain.NewHelpRequest(d.params)
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
		fc.Advance(5 * time.Minute)
		if err := advanceTo(&req, d.status, d.helper); err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
		fc.Advance(10 * time.Minute)
		requests = append(requests, req)
	}
	return requests, nil
}

// advanceTo walks a fresh request forward to the target status.
func advanceTo(req *domain.HelpRequest, target domain.RequestStatus, helper *domain.Volunteer) error {
	if target == domain.StatusOpen {
		return nil
	}
	if target == domain.StatusCancelled {
		return req.Cancel()
	}

	if err := req.Accept(helper.ID, helper.Name); err != nil {
		return err
	}
	for _, next := range []domain.RequestStatus{domain.StatusEnRoute, domain.StatusResolved} {
		if req.Status == target {
			return nil
		}
		if err := req.Advance(next); err != nil {
			return err
		}
	}
	return nil
}

func demoVolunteers() []domain.Volunteer {
	return []domain.Volunteer{
		{
			ID:                "vol-1",
			Name:              "Alex Chen",
			Contact:           "+1-555-0301",
			Location:          domain.Location{Lat: 40.7306, Lng: -73.9866, Address: "East Village, New York"},
			Skills:            []string{"First Aid", "Driving", "Heavy Lifting"},
			Availability:      true,
			Rating:            4.8,
			CompletedRequests: 23,
		},
		{
			ID:                "vol-2",
			Name:              "Sam Rivera",
			Contact:           "+1-555-0302",
			Location:          domain.Location{Lat: 40.6937, Lng: -73.9859, Address: "Downtown Brooklyn, New York"},
			Skills:            []string{"Medical Training", "Search and Rescue"},
			Availability:      true,
			Rating:            4.9,
			CompletedRequests: 41,
		},
	}
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(requests []domain.HelpRequest, alerts []domain.WeatherAlert) {
	counts := domain.CountByStatus(requests)
	fmt.Println("\n=== Fixture summary ===")
	fmt.Printf("Help requests: %d\n", len(requests))
	fmt.Printf("By status: open=%d, accepted=%d, en-route=%d, resolved=%d, cancelled=%d\n",
		counts[domain.StatusOpen], counts[domain.StatusAccepted], counts[domain.StatusEnRoute],
		counts[domain.StatusResolved], counts[domain.StatusCancelled])
	fmt.Printf("Weather alerts: %d\n", len(alerts))
}
