package models

import (
	"time"

	"stayhub/constants"
)

// Reservation status values, re-exported so the state machine below reads
// without the package qualifier.
const (
	ReservationStatusPending   = constants.ReservationStatusPending
	ReservationStatusConfirmed = constants.ReservationStatusConfirmed
	ReservationStatusCompleted = constants.ReservationStatusCompleted
	ReservationStatusCancelled = constants.ReservationStatusCancelled
)

type Reservation struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       *uint     `json:"userId"`
	User         *User     `json:"user" gorm:"foreignKey:UserID"`
	HotelID      uint      `json:"hotelId"`
	Hotel        Hotel     `json:"hotel" gorm:"foreignKey:HotelID"`
	RoomID       []uint    `json:"roomId" gorm:"-"`
	Rooms        []Room    `json:"rooms" gorm:"many2many:reservation_rooms;"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	GuestCount   int       `json:"guestCount"`
	Status       int       `json:"status"`
	GuestName    string    `json:"guestName,omitempty"`
	GuestEmail   string    `json:"guestEmail,omitempty"`
	GuestPhone   string    `json:"guestPhone,omitempty"`
	Nights       int       `json:"nights"`
	TotalPrice   int       `json:"totalPrice"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
