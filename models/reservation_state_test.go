package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingTransitions(t *testing.T) {
	r := &Reservation{Status: ReservationStatusPending}
	state := GetReservationState(r.Status)

	require.NoError(t, state.Confirm(r))
	assert.Equal(t, ReservationStatusConfirmed, r.Status)

	r = &Reservation{Status: ReservationStatusPending}
	require.NoError(t, GetReservationState(r.Status).Cancel(r))
	assert.Equal(t, ReservationStatusCancelled, r.Status)

	r = &Reservation{Status: ReservationStatusPending}
	assert.Error(t, GetReservationState(r.Status).Complete(r))
	assert.Equal(t, ReservationStatusPending, r.Status)
}

func TestConfirmedTransitions(t *testing.T) {
	r := &Reservation{Status: ReservationStatusConfirmed}
	state := GetReservationState(r.Status)

	assert.Error(t, state.Confirm(r))

	require.NoError(t, state.Complete(r))
	assert.Equal(t, ReservationStatusCompleted, r.Status)

	r = &Reservation{Status: ReservationStatusConfirmed}
	require.NoError(t, GetReservationState(r.Status).Cancel(r))
	assert.Equal(t, ReservationStatusCancelled, r.Status)
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	for _, status := range []int{ReservationStatusCompleted, ReservationStatusCancelled} {
		r := &Reservation{Status: status}
		state := GetReservationState(status)

		assert.Error(t, state.Confirm(r))
		assert.Error(t, state.Cancel(r))
		assert.Error(t, state.Complete(r))
		assert.Equal(t, status, r.Status, "terminal status must not change")
	}
}

func TestGetReservationStateUnknownStatus(t *testing.T) {
	state := GetReservationState(999)
	assert.IsType(t, &PendingState{}, state)
}
