package models

import "time"

// RoomStatus is one booked half-open interval [FromDate, ToDate) on a room.
// Rows are appended when a reservation is confirmed and deleted when it is
// cancelled; they are never merged, so adjacent or duplicate rows can exist.
type RoomStatus struct {
	ID        uint      `gorm:"primaryKey"`
	RoomID    uint      `gorm:"index"`
	FromDate  time.Time `gorm:"index"`
	ToDate    time.Time `gorm:"index"`
	Status    int
	CreatedAt time.Time
	UpdatedAt time.Time
}
