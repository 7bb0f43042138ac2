package models

import "errors"

// ReservationState models the allowed status transitions.
type ReservationState interface {
	Confirm(r *Reservation) error
	Cancel(r *Reservation) error
	Complete(r *Reservation) error
}

type PendingState struct{}

func (s *PendingState) Confirm(r *Reservation) error {
	r.Status = ReservationStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(r *Reservation) error {
	r.Status = ReservationStatusCancelled
	return nil
}

func (s *PendingState) Complete(r *Reservation) error {
	return errors.New("cannot complete pending reservation")
}

type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(r *Reservation) error {
	return errors.New("reservation already confirmed")
}

func (s *ConfirmedState) Cancel(r *Reservation) error {
	r.Status = ReservationStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(r *Reservation) error {
	r.Status = ReservationStatusCompleted
	return nil
}

type CompletedState struct{}

func (s *CompletedState) Confirm(r *Reservation) error {
	return errors.New("reservation already completed")
}

func (s *CompletedState) Cancel(r *Reservation) error {
	return errors.New("cannot cancel completed reservation")
}

func (s *CompletedState) Complete(r *Reservation) error {
	return errors.New("reservation already completed")
}

type CancelledState struct{}

func (s *CancelledState) Confirm(r *Reservation) error {
	return errors.New("cannot confirm cancelled reservation")
}

func (s *CancelledState) Cancel(r *Reservation) error {
	return errors.New("reservation already cancelled")
}

func (s *CancelledState) Complete(r *Reservation) error {
	return errors.New("cannot complete cancelled reservation")
}

// GetReservationState returns the state handler for a status value.
func GetReservationState(status int) ReservationState {
	switch status {
	case ReservationStatusPending:
		return &PendingState{}
	case ReservationStatusConfirmed:
		return &ConfirmedState{}
	case ReservationStatusCompleted:
		return &CompletedState{}
	case ReservationStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
