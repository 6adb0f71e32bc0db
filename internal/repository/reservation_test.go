package repository

import (
	"testing"

	"github.com/Miki0195/delavnice-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardTransition_AllowsPendingApproval(t *testing.T) {
	res := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusPending}

	assert.NoError(t, guardTransition(res, domain.ReservationStatusApproved))
}

func TestGuardTransition_AlreadyApproved(t *testing.T) {
	res := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusApproved, ParticipantsCount: 6}

	err := guardTransition(res, domain.ReservationStatusApproved)

	// a replayed approval is an "already handled", never a capacity problem
	var terr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "approved", terr.Current)
	assert.Equal(t, "approved", terr.Attempted)
	assert.NotErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestGuardTransition_SettledStates(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.ReservationStatusRejected,
		domain.ReservationStatusCancelled,
		domain.ReservationStatusCompleted,
	} {
		t.Run(string(status), func(t *testing.T) {
			res := &domain.Reservation{ID: "r1", Status: status}

			err := guardTransition(res, domain.ReservationStatusApproved)

			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		})
	}
}
