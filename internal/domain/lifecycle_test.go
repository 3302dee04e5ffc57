package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2024, 4, 26, 12, 0, 0, 0, time.UTC)

func validParams() NewRequestParams {
	return NewRequestParams{
		Type:             TypeMedical,
		Urgency:          UrgencyCritical,
		Title:            "Need insulin",
		Description:      "Ran out during evacuation",
		Location:         Location{Lat: 40.7128, Lng: -74.0060},
		RequesterName:    "Maria Santos",
		RequesterContact: "+1-555-0100",
	}
}

func TestNewHelpRequest(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(testStart))
	defer SetClock(nil)

	t.Run("valid params", func(t *testing.T) {
		req, err := NewHelpRequest(validParams())
		require.NoError(t, err)

		assert.NotEmpty(t, req.ID)
		assert.Equal(t, StatusOpen, req.Status)
		assert.Equal(t, testStart, req.CreatedAt)
		assert.Equal(t, req.CreatedAt, req.UpdatedAt)
		assert.Empty(t, req.VolunteerID)
	})

	t.Run("fresh ID per request", func(t *testing.T) {
		a, err := NewHelpRequest(validParams())
		require.NoError(t, err)
		b, err := NewHelpRequest(validParams())
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("unknown type", func(t *testing.T) {
		p := validParams()
		p.Type = "helicopter"
		_, err := NewHelpRequest(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "request type")
	})

	t.Run("unknown urgency", func(t *testing.T) {
		p := validParams()
		p.Urgency = "urgent-ish"
		_, err := NewHelpRequest(p)
		require.Error(t, err)
	})

	t.Run("out-of-range coordinates", func(t *testing.T) {
		p := validParams()
		p.Location = Location{Lat: 123.4, Lng: 0}
		_, err := NewHelpRequest(p)
		require.ErrorIs(t, err, ErrInvalidCoordinate)
	})
}

func TestHelpRequestAccept(t *testing.T) {
	fake := clockwork.NewFakeClockAt(testStart)
	SetClock(fake)
	defer SetClock(nil)

	t.Run("from open", func(t *testing.T) {
		req, err := NewHelpRequest(validParams())
		require.NoError(t, err)

		fake.Advance(5 * time.Minute)
		require.NoError(t, req.Accept("vol-1", "John Volunteer"))

		assert.Equal(t, StatusAccepted, req.Status)
		assert.Equal(t, "vol-1", req.VolunteerID)
		assert.Equal(t, "John Volunteer", req.VolunteerName)
		assert.True(t, req.UpdatedAt.After(req.CreatedAt))
	})

	t.Run("rejected from non-open states", func(t *testing.T) {
		for _, status := range []RequestStatus{StatusAccepted, StatusEnRoute, StatusResolved, StatusCancelled} {
			req, err := NewHelpRequest(validParams())
			require.NoError(t, err)
			req.Status = status

			err = req.Accept("vol-2", "Second Volunteer")
			require.ErrorIs(t, err, ErrInvalidTransition, "status %s", status)
			assert.Equal(t, status, req.Status, "status must be unchanged")
			assert.NotEqual(t, "vol-2", req.VolunteerID)
		}
	})
}

func TestHelpRequestAdvance(t *testing.T) {
	fake := clockwork.NewFakeClockAt(testStart)
	SetClock(fake)
	defer SetClock(nil)

	newAccepted := func(t *testing.T) HelpRequest {
		req, err := NewHelpRequest(validParams())
		require.NoError(t, err)
		require.NoError(t, req.Accept("vol-1", "John Volunteer"))
		return req
	}

	t.Run("accepted to en-route to resolved", func(t *testing.T) {
		req := newAccepted(t)

		require.NoError(t, req.Advance(StatusEnRoute))
		assert.Equal(t, StatusEnRoute, req.Status)

		require.NoError(t, req.Advance(StatusResolved))
		assert.Equal(t, StatusResolved, req.Status)
	})

	t.Run("no skipping en-route", func(t *testing.T) {
		req := newAccepted(t)
		require.ErrorIs(t, req.Advance(StatusResolved), ErrInvalidTransition)
	})

	t.Run("no backward moves", func(t *testing.T) {
		req := newAccepted(t)
		require.NoError(t, req.Advance(StatusEnRoute))
		require.ErrorIs(t, req.Advance(StatusAccepted), ErrInvalidTransition)
		require.ErrorIs(t, req.Advance(StatusOpen), ErrInvalidTransition)
	})

	t.Run("terminal states are final", func(t *testing.T) {
		req := newAccepted(t)
		require.NoError(t, req.Advance(StatusEnRoute))
		require.NoError(t, req.Advance(StatusResolved))
		require.ErrorIs(t, req.Advance(StatusEnRoute), ErrInvalidTransition)
	})

	t.Run("refreshes updatedAt", func(t *testing.T) {
		req := newAccepted(t)
		before := req.UpdatedAt
		fake.Advance(time.Minute)
		require.NoError(t, req.Advance(StatusEnRoute))
		assert.True(t, req.UpdatedAt.After(before))
	})
}

func TestHelpRequestCancel(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(testStart))
	defer SetClock(nil)

	t.Run("from any pre-resolved state", func(t *testing.T) {
		for _, status := range []RequestStatus{StatusOpen, StatusAccepted, StatusEnRoute} {
			req, err := NewHelpRequest(validParams())
			require.NoError(t, err)
			req.Status = status

			require.NoError(t, req.Cancel())
			assert.Equal(t, StatusCancelled, req.Status)
		}
	})

	t.Run("not from terminal states", func(t *testing.T) {
		for _, status := range []RequestStatus{StatusResolved, StatusCancelled} {
			req, err := NewHelpRequest(validParams())
			require.NoError(t, err)
			req.Status = status

			require.ErrorIs(t, req.Cancel(), ErrInvalidTransition)
		}
	})
}
