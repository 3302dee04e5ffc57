package store

import "github.com/helphub/helphub/internal/domain"

// Demonstration fixtures seeded into the in-memory state on startup.
// These two slices are never persisted, so re-seeding on every start
// cannot clobber user data.

// DemoSafetyTips returns the built-in preparedness guidance.
func DemoSafetyTips() []domain.SafetyTip {
	return []domain.SafetyTip{
		{
			ID:       "tip-1",
			Category: "General",
			Title:    "Stay Informed",
			Content:  "Keep a battery-powered radio and stay tuned to local emergency broadcasts.",
			Priority: "high",
		},
		{
			ID:       "tip-2",
			Category: "Flood",
			Title:    "Never Drive Through Flooded Roads",
			Content:  "Turn around, don't drown. Just 6 inches of moving water can knock you down.",
			Priority: "high",
		},
		{
			ID:       "tip-3",
			Category: "Fire",
			Title:    "Create Defensible Space",
			Content:  "Clear vegetation and combustible materials within 30 feet of your home.",
			Priority: "medium",
		},
	}
}

// DemoReliefCenters returns the built-in facility fixtures.
func DemoReliefCenters() []domain.ReliefCenter {
	return []domain.ReliefCenter{
		{
			ID:               "center-1",
			Name:             "City General Hospital",
			Type:             domain.CenterHospital,
			Location:         domain.Location{Lat: 40.7128, Lng: -74.0060, Address: "123 Main St"},
			Capacity:         500,
			CurrentOccupancy: 320,
			Contact:          "+1-555-0123",
			Services:         []string{"Emergency Care", "Surgery", "Blood Bank"},
			IsActive:         true,
		},
		{
			ID:               "center-2",
			Name:             "Community Shelter",
			Type:             domain.CenterShelter,
			Location:         domain.Location{Lat: 40.7589, Lng: -73.9851, Address: "456 Oak Ave"},
			Capacity:         200,
			CurrentOccupancy: 150,
			Contact:          "+1-555-0124",
			Services:         []string{"Temporary Housing", "Meals", "Medical Aid"},
			IsActive:         true,
		},
	}
}
