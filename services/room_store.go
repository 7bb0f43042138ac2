package services

import (
	"context"

	"stayhub/booking"
	"stayhub/constants"
	"stayhub/models"

	"gorm.io/gorm"
)

// RoomStore is the gorm-backed persistence collaborator behind the booking
// core. FetchRooms builds the immutable snapshots the core filters over;
// Commit/ReleaseBooking mutate the booked ranges once a reservation is
// confirmed or cancelled.
type RoomStore struct {
	db *gorm.DB
}

func NewRoomStore(db *gorm.DB) *RoomStore {
	return &RoomStore{db: db}
}

// FetchRooms loads every active room of the hotel with its booked ranges.
func (s *RoomStore) FetchRooms(ctx context.Context, hotelID uint) ([]booking.RoomOption, error) {
	var rooms []models.Room
	err := s.db.WithContext(ctx).
		Preload("Statuses", "status = ?", constants.RangeStatusBooked).
		Where("hotel_id = ? AND status = ?", hotelID, constants.RoomStatusAvailable).
		Order("room_id").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	options := make([]booking.RoomOption, 0, len(rooms))
	for _, room := range rooms {
		options = append(options, toRoomOption(room))
	}
	return options, nil
}

// CommitBooking appends one booked range to a room.
func (s *RoomStore) CommitBooking(ctx context.Context, roomID uint, stay booking.DateRange) error {
	status := models.RoomStatus{
		RoomID:   roomID,
		Status:   constants.RangeStatusBooked,
		FromDate: stay.Start,
		ToDate:   stay.End,
	}
	return s.db.WithContext(ctx).Create(&status).Error
}

// ReleaseBooking removes the booked range again. Deleting by exact bounds
// keeps duplicate adjacent rows from other reservations intact.
func (s *RoomStore) ReleaseBooking(ctx context.Context, roomID uint, stay booking.DateRange) error {
	return s.db.WithContext(ctx).
		Where("room_id = ? AND from_date = ? AND to_date = ? AND status = ?",
			roomID, stay.Start, stay.End, constants.RangeStatusBooked).
		Delete(&models.RoomStatus{}).Error
}

func toRoomOption(room models.Room) booking.RoomOption {
	option := booking.RoomOption{
		ID:          room.RoomID,
		RoomNumber:  room.RoomNumber,
		TypeName:    room.RoomType,
		BedCapacity: room.BedCapacity,
		Price:       room.Price,
	}
	for _, status := range room.Statuses {
		option.Booked = append(option.Booked, booking.DateRange{
			Start: status.FromDate,
			End:   status.ToDate,
		})
	}
	return option
}
