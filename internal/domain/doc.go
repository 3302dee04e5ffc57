// Package domain models the disaster-relief coordination domain: help
// requests, volunteers, relief centers, weather alerts, and the geospatial
// logic that connects them.
//
// # Help-request lifecycle
//
// A help request moves through a strict, monotonic state machine:
//
//	open → accepted → en-route → resolved
//
// with cancelled reachable from any state before resolved. Resolved and
// cancelled are terminal. Transitions never move backward; attempts to do so
// fail with [ErrInvalidTransition]. Accepting a request binds a volunteer and
// is valid only while the request is still open, which is the seam a future
// multi-user deployment would turn into a compare-and-set.
//
// # Urgency
//
// Urgency is an ordinal scale used as the primary sort key on volunteer
// dashboards:
//
//	critical > high > medium > low
//
// # Distance
//
// Distances are great-circle kilometers computed with the haversine formula
// and a mean Earth radius of 6371 km. [Distance] performs no coordinate
// validation; callers that accept user input validate with
// [Location.Validate] first. "Nearby" means within [NearbyRadiusKm] of the
// user's current fix.
//
// # Time
//
// All timestamps come from a package-level clockwork clock so tests and
// fixture generators can freeze time via [SetClock].
package domain
