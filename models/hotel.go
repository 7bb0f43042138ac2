package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Hotel struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	CityID           uint            `json:"cityId"`
	UserID           uint            `json:"userId"` // owning hotel admin
	Name             string          `json:"name"`
	Address          string          `json:"address"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Stars            int             `json:"stars"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img" gorm:"type:json"`
	Status           int             `json:"status" gorm:"default:1"`
	TimeCheckIn      string          `json:"timeCheckIn"`
	TimeCheckOut     string          `json:"timeCheckOut"`
	Longitude        float64         `json:"longitude"`
	Latitude         float64         `json:"latitude"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	City             City            `json:"city" gorm:"foreignKey:CityID"`
	User             User            `json:"user" gorm:"foreignKey:UserID"`
	Rooms            []Room          `json:"rooms" gorm:"foreignKey:HotelID"`
}

func (h *Hotel) ValidateStars() error {
	if h.Stars < 0 || h.Stars > 5 {
		return fmt.Errorf("invalid stars: %d, must be between 0 and 5", h.Stars)
	}
	return nil
}
