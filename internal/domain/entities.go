package domain

import "time"

// Location is a WGS-84 coordinate pair with an optional resolved address.
// It is treated as an immutable value.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// RequestType categorizes what kind of help is being asked for.
type RequestType string

const (
	TypeMedical    RequestType = "medical"
	TypeFood       RequestType = "food"
	TypeShelter    RequestType = "shelter"
	TypeEvacuation RequestType = "evacuation"
	TypeSupplies   RequestType = "supplies"
	TypeOther      RequestType = "other"
)

// Valid reports whether t is a known request type.
func (t RequestType) Valid() bool {
	switch t {
	case TypeMedical, TypeFood, TypeShelter, TypeEvacuation, TypeSupplies, TypeOther:
		return true
	}
	return false
}

// Urgency is the ordinal severity of a help request.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// Rank maps an urgency to its sort weight. Higher is more urgent;
// unknown urgencies rank below low.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 4
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	}
	return 0
}

// Valid reports whether u is a known urgency level.
func (u Urgency) Valid() bool { return u.Rank() > 0 }

// RequestStatus is a help request's position in its lifecycle.
type RequestStatus string

const (
	StatusOpen      RequestStatus = "open"
	StatusAccepted  RequestStatus = "accepted"
	StatusEnRoute   RequestStatus = "en-route"
	StatusResolved  RequestStatus = "resolved"
	StatusCancelled RequestStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusAccepted, StatusEnRoute, StatusResolved, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s RequestStatus) Terminal() bool {
	return s == StatusResolved || s == StatusCancelled
}

// HelpRequest is a record of a need submitted by a person seeking assistance.
// Requests are never deleted; cancellation is a terminal status, not removal.
type HelpRequest struct {
	ID               string        `json:"id"`
	Type             RequestType   `json:"type"`
	Urgency          Urgency       `json:"urgency"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Location         Location      `json:"location"`
	RequesterName    string        `json:"requesterName"`
	RequesterContact string        `json:"requesterContact"`
	Status           RequestStatus `json:"status"`
	VolunteerID      string        `json:"volunteerId,omitempty"`
	VolunteerName    string        `json:"volunteerName,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// Volunteer is a registered helper. Read-mostly: the core mutates requests,
// not volunteers.
type Volunteer struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Contact           string   `json:"contact"`
	Location          Location `json:"location"`
	Skills            []string `json:"skills"`
	Availability      bool     `json:"availability"`
	Rating            float64  `json:"rating"`
	CompletedRequests int      `json:"completedRequests"`
}

// CenterType classifies a relief center facility.
type CenterType string

const (
	CenterHospital   CenterType = "hospital"
	CenterShelter    CenterType = "shelter"
	CenterSupply     CenterType = "supply_center"
	CenterEvacuation CenterType = "evacuation_center"
)

// Valid reports whether c is a known center type.
func (c CenterType) Valid() bool {
	switch c {
	case CenterHospital, CenterShelter, CenterSupply, CenterEvacuation:
		return true
	}
	return false
}

// ReliefCenter is a fixed-capacity facility tracked for occupancy.
// 0 ≤ CurrentOccupancy ≤ Capacity is expected but not enforced here;
// cmd/validate reports violations.
type ReliefCenter struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Type             CenterType `json:"type"`
	Location         Location   `json:"location"`
	Capacity         int        `json:"capacity"`
	CurrentOccupancy int        `json:"currentOccupancy"`
	Contact          string     `json:"contact"`
	Services         []string   `json:"services"`
	IsActive         bool       `json:"isActive"`
}

// AlertType is the class of a weather alert.
type AlertType string

const (
	AlertWarning  AlertType = "warning"
	AlertWatch    AlertType = "watch"
	AlertAdvisory AlertType = "advisory"
)

// AlertSeverity grades a weather alert.
type AlertSeverity string

const (
	SeveritySevere   AlertSeverity = "severe"
	SeverityModerate AlertSeverity = "moderate"
	SeverityMinor    AlertSeverity = "minor"
)

// WeatherAlert is an active or upcoming hazardous-weather notice.
type WeatherAlert struct {
	ID          string        `json:"id"`
	Type        AlertType     `json:"type"`
	Severity    AlertSeverity `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	StartTime   time.Time     `json:"startTime"`
	EndTime     time.Time     `json:"endTime"`
}

// SafetyTip is a piece of preparedness guidance shown to users.
type SafetyTip struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
}

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool { return t == ThemeLight || t == ThemeDark }

// Role distinguishes how the current user participates.
type Role string

const (
	RoleRequester Role = "requester"
	RoleVolunteer Role = "volunteer"
)
