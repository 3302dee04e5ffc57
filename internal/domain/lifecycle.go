package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidTransition is returned when a status change would move a
// request backward or out of a terminal state.
var ErrInvalidTransition = errors.New("invalid status transition")

// NewRequestParams carries the requester-supplied fields for a new help request.
type NewRequestParams struct {
	Type             RequestType
	Urgency          Urgency
	Title            string
	Description      string
	Location         Location
	RequesterName    string
	RequesterContact string
}

// NewHelpRequest creates a help request in the open state with a fresh
// opaque ID and CreatedAt == UpdatedAt == now.
func NewHelpRequest(p NewRequestParams) (HelpRequest, error) {
	if !p.Type.Valid() {
		return HelpRequest{}, fmt.Errorf("unknown request type %q", p.Type)
	}
	if !p.Urgency.Valid() {
		return HelpRequest{}, fmt.Errorf("unknown urgency %q", p.Urgency)
	}
	if err := p.Location.Validate(); err != nil {
		return HelpRequest{}, fmt.Errorf("request location: %w", err)
	}

	now := clock.Now().UTC()
	return HelpRequest{
		ID:               uuid.NewString(),
		Type:             p.Type,
		Urgency:          p.Urgency,
		Title:            p.Title,
		Description:      p.Description,
		Location:         p.Location,
		RequesterName:    p.RequesterName,
		RequesterContact: p.RequesterContact,
		Status:           StatusOpen,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Accept binds a volunteer to an open request. Accepting a request that is
// no longer open fails with ErrInvalidTransition rather than silently
// overwriting the earlier volunteer.
func (r *HelpRequest) Accept(volunteerID, volunteerName string) error {
	if r.Status != StatusOpen {
		return fmt.Errorf("%w: accept from %q", ErrInvalidTransition, r.Status)
	}
	r.Status = StatusAccepted
	r.VolunteerID = volunteerID
	r.VolunteerName = volunteerName
	r.UpdatedAt = clock.Now().UTC()
	return nil
}

// nextStatus maps each non-terminal status to its single forward successor.
var nextStatus = map[RequestStatus]RequestStatus{
	StatusAccepted: StatusEnRoute,
	StatusEnRoute:  StatusResolved,
}

// Advance moves the request one step forward along
// accepted → en-route → resolved. Any other target fails.
func (r *HelpRequest) Advance(to RequestStatus) error {
	if nextStatus[r.Status] != to || to == "" {
		return fmt.Errorf("%w: %q → %q", ErrInvalidTransition, r.Status, to)
	}
	r.Status = to
	r.UpdatedAt = clock.Now().UTC()
	return nil
}

// Cancel terminates the request from any pre-resolved state.
func (r *HelpRequest) Cancel() error {
	if r.Status.Terminal() {
		return fmt.Errorf("%w: cancel from %q", ErrInvalidTransition, r.Status)
	}
	r.Status = StatusCancelled
	r.UpdatedAt = clock.Now().UTC()
	return nil
}
