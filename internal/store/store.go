// Package store holds the single application state aggregate and applies
// the closed set of actions to it. The store object is constructed
// explicitly and handed to its consumers; there is no ambient singleton.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/helphub/helphub/internal/domain"
	"github.com/helphub/helphub/internal/observability"
)

// ErrNotFound is returned by lifecycle helpers when no request has the
// given ID.
var ErrNotFound = errors.New("help request not found")

// State is the full application state tree. Values returned by the store
// are copies; mutating them does not affect the store.
type State struct {
	Theme         domain.Theme
	UserLocation  *domain.Location
	UserRole      *domain.Role
	HelpRequests  []domain.HelpRequest
	Volunteers    []domain.Volunteer
	WeatherAlerts []domain.WeatherAlert
	SafetyTips    []domain.SafetyTip
	ReliefCenters []domain.ReliefCenter
	Offline       bool
}

// Persister mirrors the durable state slices to local storage. Loads
// report absence via ok=false; errors mean the stored form was
// unreadable (treated the same as absence by the store).
type Persister interface {
	SaveTheme(ctx context.Context, theme domain.Theme) error
	SaveHelpRequests(ctx context.Context, reqs []domain.HelpRequest) error
	SaveVolunteers(ctx context.Context, vols []domain.Volunteer) error
	LoadTheme(ctx context.Context) (domain.Theme, bool, error)
	LoadHelpRequests(ctx context.Context) ([]domain.HelpRequest, bool, error)
	LoadVolunteers(ctx context.Context) ([]domain.Volunteer, bool, error)
}

// Store owns the State and serializes all mutation through Dispatch.
type Store struct {
	mu        sync.Mutex
	state     State
	persister Persister
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a store with default state: light theme, empty collections,
// no location, online. persister may be nil for callers that do not
// persist (tests, fixture generation).
func New(persister Persister, logger *slog.Logger, metrics *observability.Metrics) *Store {
	return &Store{
		state:     State{Theme: domain.ThemeLight},
		persister: persister,
		logger:    logger,
		metrics:   metrics,
	}
}

// reduce applies an action to a state, producing the next state. Pure:
// no I/O, no mutation of the input. Unknown actions return the state
// unchanged, never an error.
func reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetTheme:
		s.Theme = a.Theme
	case SetUserLocation:
		loc := a.Location
		s.UserLocation = &loc
	case SetUserRole:
		if a.Role == nil {
			s.UserRole = nil
		} else {
			role := *a.Role
			s.UserRole = &role
		}
	case AddHelpRequest:
		next := make([]domain.HelpRequest, 0, len(s.HelpRequests)+1)
		next = append(next, s.HelpRequests...)
		s.HelpRequests = append(next, a.Request)
	case UpdateHelpRequest:
		next := slices.Clone(s.HelpRequests)
		for i, r := range next {
			if r.ID == a.Request.ID {
				next[i] = a.Request
			}
		}
		s.HelpRequests = next
	case SetHelpRequests:
		s.HelpRequests = slices.Clone(a.Requests)
	case SetVolunteers:
		s.Volunteers = slices.Clone(a.Volunteers)
	case SetWeatherAlerts:
		s.WeatherAlerts = slices.Clone(a.Alerts)
	case SetSafetyTips:
		s.SafetyTips = slices.Clone(a.Tips)
	case SetReliefCenters:
		s.ReliefCenters = slices.Clone(a.Centers)
	case SetOffline:
		s.Offline = a.Offline
	}
	return s
}

// Dispatch applies the action and mirrors any persisted slice it touched.
// Actions are applied in dispatch order; persistence failures are logged
// and counted but never block the state change.
func (s *Store) Dispatch(ctx context.Context, action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(ctx, action)
}

func (s *Store) applyLocked(ctx context.Context, action Action) {
	s.state = reduce(s.state, action)

	if s.metrics != nil {
		s.metrics.ActionsDispatched.WithLabelValues(action.name()).Inc()
		s.metrics.OpenRequests.Set(float64(domain.CountByStatus(s.state.HelpRequests)[domain.StatusOpen]))
	}

	if s.persister == nil {
		return
	}
	var err error
	switch action.(type) {
	case SetTheme:
		err = s.persister.SaveTheme(ctx, s.state.Theme)
	case AddHelpRequest, UpdateHelpRequest, SetHelpRequests:
		err = s.persister.SaveHelpRequests(ctx, s.state.HelpRequests)
	case SetVolunteers:
		err = s.persister.SaveVolunteers(ctx, s.state.Volunteers)
	default:
		return
	}
	if err != nil {
		if s.metrics != nil {
			s.metrics.PersistErrors.Inc()
		}
		s.logger.Warn("persist state slice failed", "action", action.name(), "error", err)
	}
}

// State returns a copy of the current state. Slices and pointers are
// cloned so callers cannot mutate the store through the result.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	out := s.state
	out.HelpRequests = slices.Clone(s.state.HelpRequests)
	out.Volunteers = slices.Clone(s.state.Volunteers)
	out.WeatherAlerts = slices.Clone(s.state.WeatherAlerts)
	out.SafetyTips = slices.Clone(s.state.SafetyTips)
	out.ReliefCenters = slices.Clone(s.state.ReliefCenters)
	if s.state.UserLocation != nil {
		loc := *s.state.UserLocation
		out.UserLocation = &loc
	}
	if s.state.UserRole != nil {
		role := *s.state.UserRole
		out.UserRole = &role
	}
	return out
}

// Load restores the persisted slices. Absent or unreadable slices fall
// back silently to defaults; Load never fails.
func (s *Store) Load(ctx context.Context) {
	if s.persister == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if theme, ok, err := s.persister.LoadTheme(ctx); err != nil {
		s.logger.Warn("stored theme unreadable, using default", "error", err)
	} else if ok && theme.Valid() {
		s.state.Theme = theme
	}

	if reqs, ok, err := s.persister.LoadHelpRequests(ctx); err != nil {
		s.logger.Warn("stored help requests unreadable, using defaults", "error", err)
	} else if ok {
		s.state.HelpRequests = reqs
	}

	if vols, ok, err := s.persister.LoadVolunteers(ctx); err != nil {
		s.logger.Warn("stored volunteers unreadable, using defaults", "error", err)
	} else if ok {
		s.state.Volunteers = vols
	}

	if s.metrics != nil {
		s.metrics.OpenRequests.Set(float64(domain.CountByStatus(s.state.HelpRequests)[domain.StatusOpen]))
	}
}

// Seed installs the demonstration safety tips and relief centers.
// Idempotent: slices that already hold data are left alone, so embedders
// that persist these slices themselves are never overwritten. Marks the
// store ready.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.SafetyTips) == 0 {
		s.state.SafetyTips = DemoSafetyTips()
	}
	if len(s.state.ReliefCenters) == 0 {
		s.state.ReliefCenters = DemoReliefCenters()
	}
	s.ready.Store(true)
}

// CheckReadiness reports whether the store has loaded and seeded.
func (s *Store) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("store has not loaded yet")
	}
	return nil
}

// SubmitRequest creates a help request from the given params and adds it
// to the collection, returning the stored request.
func (s *Store) SubmitRequest(ctx context.Context, p domain.NewRequestParams) (domain.HelpRequest, error) {
	req, err := domain.NewHelpRequest(p)
	if err != nil {
		return domain.HelpRequest{}, fmt.Errorf("submit request: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(ctx, AddHelpRequest{Request: req})
	return req, nil
}

// AcceptRequest binds a volunteer to an open request. The check-and-set
// happens under the store lock, so two racing accepts cannot both win.
func (s *Store) AcceptRequest(ctx context.Context, requestID, volunteerID, volunteerName string) (domain.HelpRequest, error) {
	return s.transition(ctx, requestID, func(r *domain.HelpRequest) error {
		return r.Accept(volunteerID, volunteerName)
	})
}

// AdvanceRequest moves a request one step forward in its lifecycle.
func (s *Store) AdvanceRequest(ctx context.Context, requestID string, to domain.RequestStatus) (domain.HelpRequest, error) {
	return s.transition(ctx, requestID, func(r *domain.HelpRequest) error {
		return r.Advance(to)
	})
}

// CancelRequest terminates a pre-resolved request.
func (s *Store) CancelRequest(ctx context.Context, requestID string) (domain.HelpRequest, error) {
	return s.transition(ctx, requestID, func(r *domain.HelpRequest) error {
		return r.Cancel()
	})
}

func (s *Store) transition(ctx context.Context, requestID string, fn func(*domain.HelpRequest) error) (domain.HelpRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.state.HelpRequests, func(r domain.HelpRequest) bool {
		return r.ID == requestID
	})
	if idx < 0 {
		return domain.HelpRequest{}, fmt.Errorf("%w: %s", ErrNotFound, requestID)
	}

	req := s.state.HelpRequests[idx]
	if err := fn(&req); err != nil {
		return domain.HelpRequest{}, err
	}

	s.applyLocked(ctx, UpdateHelpRequest{Request: req})
	return req, nil
}
