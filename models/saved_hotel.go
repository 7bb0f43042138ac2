package models

import "time"

// SavedHotel is a user's bookmarked hotel.
type SavedHotel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index:idx_saved_user_hotel,unique"`
	HotelID   uint      `json:"hotelId" gorm:"index:idx_saved_user_hotel,unique"`
	Hotel     Hotel     `json:"hotel" gorm:"foreignKey:HotelID"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
