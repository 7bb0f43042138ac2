package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Room struct {
	RoomID      uint            `json:"id" gorm:"primaryKey"`
	HotelID     uint            `json:"hotelId"`
	RoomNumber  string          `json:"roomNumber"`
	RoomType    string          `json:"roomType"`
	BedCapacity int             `json:"bedCapacity"`
	Price       float64         `json:"price"`
	Acreage     int             `json:"acreage"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`
	Status      int             `json:"status" gorm:"default:1"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel       Hotel           `json:"hotel" gorm:"foreignKey:HotelID"`
	Statuses    []RoomStatus    `json:"statuses,omitempty" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateCapacity() error {
	if r.BedCapacity <= 0 {
		return fmt.Errorf("invalid bed capacity: %d, must be positive", r.BedCapacity)
	}
	if r.Price < 0 {
		return fmt.Errorf("invalid price: %v, must not be negative", r.Price)
	}
	return nil
}
