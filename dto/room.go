package dto

import (
	"encoding/json"
	"time"
)

type RoomRequest struct {
	RoomID      uint            `json:"id"`
	HotelID     uint            `json:"hotelId"`
	RoomNumber  string          `json:"roomNumber"`
	RoomType    string          `json:"roomType"`
	BedCapacity int             `json:"bedCapacity"`
	Price       float64         `json:"price"`
	Acreage     int             `json:"acreage"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
	Status      int             `json:"status"`
}

type RoomResponse struct {
	RoomID      uint      `json:"id"`
	HotelID     uint      `json:"hotelId"`
	RoomNumber  string    `json:"roomNumber"`
	RoomType    string    `json:"roomType"`
	BedCapacity int       `json:"bedCapacity"`
	Price       float64   `json:"price"`
	Status      int       `json:"status"`
	Avatar      string    `json:"avatar"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RoomTypeResponse groups a hotel's rooms by category for the room list
// screen.
type RoomTypeResponse struct {
	TypeName string         `json:"typeName"`
	Rooms    []RoomResponse `json:"rooms"`
}

// BookedRangeResponse is one booked interval on the room calendar.
type BookedRangeResponse struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}
