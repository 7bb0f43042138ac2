package services

import (
	"context"
	"time"

	"stayhub/booking"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"

	"gorm.io/gorm"
)

const dateLayout = "02/01/2006"

// ReservationService orchestrates the booking core against the database:
// fetch one snapshot, run the pure checks, persist the reservation, then
// fan out the per-room booked-range writes.
type ReservationService struct {
	db    *gorm.DB
	store *RoomStore
	log   logger.Logger
}

func NewReservationService(db *gorm.DB, log logger.Logger) *ReservationService {
	return &ReservationService{
		db:    db,
		store: NewRoomStore(db),
		log:   log,
	}
}

// ParseStay turns the wire date strings into a validated stay range.
func ParseStay(checkIn, checkOut string) (booking.DateRange, error) {
	start, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return booking.DateRange{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-in date", err)
	}
	end, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return booking.DateRange{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-out date", err)
	}
	return booking.NewDateRange(start, end)
}

// Create books the requested rooms for the stay. The whole decision runs on
// a single snapshot fetched up front; the booked-range writes are fanned out
// after the reservation row is persisted.
func (s *ReservationService) Create(ctx context.Context, req dto.CreateReservationRequest, userID *uint) (*models.Reservation, error) {
	stay, err := ParseStay(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if req.GuestCount <= 0 || len(req.RoomID) == 0 {
		return nil, errors.ErrInvalidRequest
	}

	snapshot, err := s.store.FetchRooms(ctx, req.HotelID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot load rooms", err)
	}

	chosen, err := pickRequested(snapshot, req.RoomID)
	if err != nil {
		return nil, err
	}

	free, err := booking.FilterAvailable(chosen, stay)
	if err != nil {
		return nil, err
	}
	if len(free) != len(chosen) {
		return nil, errors.ErrRoomBooked
	}

	selection := buildSelection(chosen, req.GuestCount)
	if !selection.IsComplete() {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRequest, "Selected rooms do not sleep all guests", nil)
	}

	nights := booking.Nights(stay.Start, stay.End)
	total := booking.TotalPrice(selection.Rooms(), nights)

	reservation := models.Reservation{
		UserID:       userID,
		HotelID:      req.HotelID,
		RoomID:       req.RoomID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		GuestCount:   req.GuestCount,
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		GuestPhone:   req.GuestPhone,
		Status:       constants.ReservationStatusConfirmed,
		Nights:       nights,
		TotalPrice:   total,
	}

	if err := s.db.WithContext(ctx).Create(&reservation).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot create reservation", err)
	}

	var rooms []models.Room
	for _, roomID := range req.RoomID {
		rooms = append(rooms, models.Room{RoomID: roomID})
	}
	if err := s.db.WithContext(ctx).Model(&reservation).Association("Rooms").Append(rooms); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot attach rooms", err)
	}

	if err := booking.CommitAll(ctx, s.store, req.RoomID, stay); err != nil {
		// Some rooms were booked and some were not; nothing is rolled back.
		s.log.Error("partial booked-range commit for reservation %d: %v", reservation.ID, err)
		return nil, err
	}

	return &reservation, nil
}

// Cancel transitions the reservation and releases every room's booked range.
// A partial release surfaces as one aggregate error.
func (s *ReservationService) Cancel(ctx context.Context, reservationID uint) (*models.Reservation, error) {
	reservation, err := s.load(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	state := models.GetReservationState(reservation.Status)
	if err := state.Cancel(reservation); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if err := s.db.WithContext(ctx).Save(reservation).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot update reservation", err)
	}

	stay, err := ParseStay(reservation.CheckInDate, reservation.CheckOutDate)
	if err != nil {
		return nil, err
	}

	roomIDs := make([]uint, 0, len(reservation.Rooms))
	for _, room := range reservation.Rooms {
		roomIDs = append(roomIDs, room.RoomID)
	}

	if err := booking.ReleaseAll(ctx, s.store, roomIDs, stay); err != nil {
		s.log.Error("partial booked-range release for reservation %d: %v", reservation.ID, err)
		return nil, err
	}

	return reservation, nil
}

// Complete marks a confirmed reservation as completed after checkout.
func (s *ReservationService) Complete(ctx context.Context, reservationID uint) (*models.Reservation, error) {
	reservation, err := s.load(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	state := models.GetReservationState(reservation.Status)
	if err := state.Complete(reservation); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if err := s.db.WithContext(ctx).Save(reservation).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot update reservation", err)
	}
	return reservation, nil
}

// CompleteExpired flips confirmed reservations whose checkout has passed.
// Runs from the nightly cron sweep.
func (s *ReservationService) CompleteExpired(ctx context.Context) (int, error) {
	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Where("status = ?", constants.ReservationStatusConfirmed).
		Find(&reservations).Error
	if err != nil {
		return 0, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	completed := 0
	for i := range reservations {
		checkOut, err := time.Parse(dateLayout, reservations[i].CheckOutDate)
		if err != nil || !checkOut.Before(today) {
			continue
		}
		reservations[i].Status = constants.ReservationStatusCompleted
		if err := s.db.WithContext(ctx).Save(&reservations[i]).Error; err != nil {
			s.log.Error("cannot complete reservation %d: %v", reservations[i].ID, err)
			continue
		}
		completed++
	}
	return completed, nil
}

func (s *ReservationService) load(ctx context.Context, reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.WithContext(ctx).Preload("Rooms").First(&reservation, reservationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrReservationNotFound
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot load reservation", err)
	}
	return &reservation, nil
}

// buildSelection replays the guest's room picks onto a fresh selection
// sized to the request. Duplicate room numbers toggle each other off, so a
// request naming the same room twice comes out incomplete.
func buildSelection(rooms []booking.RoomOption, guestCount int) *booking.Selection {
	selection := booking.NewSelection(len(rooms), guestCount)
	for _, room := range rooms {
		selection.Toggle(room)
	}
	return selection
}

// pickRequested maps requested room ids onto the snapshot, failing when a
// room does not belong to the hotel.
func pickRequested(snapshot []booking.RoomOption, roomIDs []uint) ([]booking.RoomOption, error) {
	byID := make(map[uint]booking.RoomOption, len(snapshot))
	for _, room := range snapshot {
		byID[room.ID] = room
	}

	chosen := make([]booking.RoomOption, 0, len(roomIDs))
	for _, roomID := range roomIDs {
		room, ok := byID[roomID]
		if !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidRequest, "Room does not belong to this hotel", nil)
		}
		chosen = append(chosen, room)
	}
	return chosen, nil
}
