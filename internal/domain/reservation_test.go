package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{ReservationStatusPending, ReservationStatusApproved, true},
		{ReservationStatusPending, ReservationStatusRejected, true},
		{ReservationStatusPending, ReservationStatusCancelled, true},
		{ReservationStatusPending, ReservationStatusCompleted, false},
		{ReservationStatusApproved, ReservationStatusCancelled, true},
		{ReservationStatusApproved, ReservationStatusCompleted, true},
		{ReservationStatusApproved, ReservationStatusRejected, false},
		{ReservationStatusRejected, ReservationStatusApproved, false},
		{ReservationStatusCancelled, ReservationStatusPending, false},
		{ReservationStatusCompleted, ReservationStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservationStatus_Terminal(t *testing.T) {
	assert.False(t, ReservationStatusPending.Terminal())
	assert.False(t, ReservationStatusApproved.Terminal())
	assert.True(t, ReservationStatusRejected.Terminal())
	assert.True(t, ReservationStatusCancelled.Terminal())
	assert.True(t, ReservationStatusCompleted.Terminal())
}

func TestKeyForReservation(t *testing.T) {
	slotID := "sl1"
	serviceID := "s1"

	slotBound := &Reservation{SlotID: &slotID, ServiceID: &serviceID}
	key, ok := KeyForReservation(slotBound)
	assert.True(t, ok)
	assert.Equal(t, SlotKey("sl1"), key)

	serviceBound := &Reservation{ServiceID: &serviceID}
	key, ok = KeyForReservation(serviceBound)
	assert.True(t, ok)
	assert.Equal(t, ServiceKey("s1"), key)

	unbound := &Reservation{}
	_, ok = KeyForReservation(unbound)
	assert.False(t, ok)
}

func TestValidationError_Err(t *testing.T) {
	v := NewValidationError()
	assert.NoError(t, v.Err())

	v.Add("title", "is required")
	v.Add("region", "is required")
	err := v.Err()
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "region is required")
	assert.Contains(t, err.Error(), "title is required")
}
