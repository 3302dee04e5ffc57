package domain

import (
	"errors"
	"fmt"
	"slices"
)

// NearbyRadiusKm is the distance cutoff for the "nearby" filter.
const NearbyRadiusKm = 10.0

// ErrNoLocation is returned when an operation needs the user's current
// fix and none exists. Distance sorting is explicitly unsortable without
// one, never silently zero.
var ErrNoLocation = errors.New("no known user location")

// Filter selects which subset of the request collection is visible.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterOpen   Filter = "open"
	FilterActive Filter = "active" // accepted or en-route
	FilterNearby Filter = "nearby"
)

// SortOrder picks exactly one ordering for the visible requests.
type SortOrder string

const (
	SortByUrgency  SortOrder = "urgency"  // critical first
	SortByDistance SortOrder = "distance" // closest first, needs a fix
	SortByNewest   SortOrder = "newest"   // most recently created first
)

// FilterRequests returns the subset of reqs matched by f. The nearby filter
// needs the user's location; with userLoc nil it returns an empty set.
// Unknown filters behave as FilterAll. The input slice is not mutated.
func FilterRequests(reqs []HelpRequest, f Filter, userLoc *Location) []HelpRequest {
	out := make([]HelpRequest, 0, len(reqs))
	for _, r := range reqs {
		switch f {
		case FilterOpen:
			if r.Status == StatusOpen {
				out = append(out, r)
			}
		case FilterActive:
			if r.Status == StatusAccepted || r.Status == StatusEnRoute {
				out = append(out, r)
			}
		case FilterNearby:
			if userLoc != nil && Distance(*userLoc, r.Location) <= NearbyRadiusKm {
				out = append(out, r)
			}
		default:
			out = append(out, r)
		}
	}
	return out
}

// SortRequests returns a sorted copy of reqs. Sorting is stable: ties keep
// their relative input order. Distance sorting without a known user
// location fails with ErrNoLocation.
func SortRequests(reqs []HelpRequest, order SortOrder, userLoc *Location) ([]HelpRequest, error) {
	out := slices.Clone(reqs)

	switch order {
	case SortByUrgency:
		slices.SortStableFunc(out, func(a, b HelpRequest) int {
			return b.Urgency.Rank() - a.Urgency.Rank()
		})
	case SortByDistance:
		if userLoc == nil {
			return nil, fmt.Errorf("sort by distance: %w", ErrNoLocation)
		}
		slices.SortStableFunc(out, func(a, b HelpRequest) int {
			da, db := Distance(*userLoc, a.Location), Distance(*userLoc, b.Location)
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			}
			return 0
		})
	case SortByNewest:
		slices.SortStableFunc(out, func(a, b HelpRequest) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	default:
		return nil, fmt.Errorf("unknown sort order %q", order)
	}

	return out, nil
}

// CountByStatus tallies the request collection for dashboard summaries.
func CountByStatus(reqs []HelpRequest) map[RequestStatus]int {
	counts := make(map[RequestStatus]int, len(reqs))
	for _, r := range reqs {
		counts[r.Status]++
	}
	return counts
}
