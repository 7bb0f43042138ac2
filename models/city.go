package models

import "time"

type City struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"unique;not null"`
	Country   string    `json:"country"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotels    []Hotel   `json:"hotels,omitempty" gorm:"foreignKey:CityID"`
}
