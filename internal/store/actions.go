package store

import "github.com/helphub/helphub/internal/domain"

// Action is one member of the closed set of state mutations. The name
// method doubles as the metrics label and keeps the set closed to this
// package's concrete types.
type Action interface {
	name() string
}

// SetTheme switches the UI color scheme.
type SetTheme struct{ Theme domain.Theme }

// SetUserLocation records the user's current position fix.
type SetUserLocation struct{ Location domain.Location }

// SetUserRole records whether the user is requesting or volunteering.
// A nil Role clears the selection.
type SetUserRole struct{ Role *domain.Role }

// AddHelpRequest appends a newly created request to the collection.
type AddHelpRequest struct{ Request domain.HelpRequest }

// UpdateHelpRequest replaces the request with a matching ID. Requests
// with no matching ID are ignored.
type UpdateHelpRequest struct{ Request domain.HelpRequest }

// SetHelpRequests replaces the whole request collection.
type SetHelpRequests struct{ Requests []domain.HelpRequest }

// SetVolunteers replaces the volunteer collection.
type SetVolunteers struct{ Volunteers []domain.Volunteer }

// SetWeatherAlerts replaces the active weather alerts.
type SetWeatherAlerts struct{ Alerts []domain.WeatherAlert }

// SetSafetyTips replaces the safety-tip collection.
type SetSafetyTips struct{ Tips []domain.SafetyTip }

// SetReliefCenters replaces the relief-center collection.
type SetReliefCenters struct{ Centers []domain.ReliefCenter }

// SetOffline records the connectivity flag.
type SetOffline struct{ Offline bool }

func (SetTheme) name() string          { return "set_theme" }
func (SetUserLocation) name() string   { return "set_user_location" }
func (SetUserRole) name() string       { return "set_user_role" }
func (AddHelpRequest) name() string    { return "add_help_request" }
func (UpdateHelpRequest) name() string { return "update_help_request" }
func (SetHelpRequests) name() string   { return "set_help_requests" }
func (SetVolunteers) name() string     { return "set_volunteers" }
func (SetWeatherAlerts) name() string  { return "set_weather_alerts" }
func (SetSafetyTips) name() string     { return "set_safety_tips" }
func (SetReliefCenters) name() string  { return "set_relief_centers" }
func (SetOffline) name() string        { return "set_offline" }
