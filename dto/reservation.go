package dto

import "time"

type CreateReservationRequest struct {
	UserID       uint   `json:"userId"`
	HotelID      uint   `json:"hotelId"`
	RoomID       []uint `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	GuestCount   int    `json:"guestCount"`
	GuestName    string `json:"guestName,omitempty"`
	GuestEmail   string `json:"guestEmail,omitempty"`
	GuestPhone   string `json:"guestPhone,omitempty"`
}

type ReservationHotelResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Avatar  string `json:"avatar"`
}

type ReservationRoomResponse struct {
	ID         uint    `json:"id"`
	RoomNumber string  `json:"roomNumber"`
	RoomType   string  `json:"roomType"`
	Price      float64 `json:"price"`
}

type ReservationResponse struct {
	ID           uint                      `json:"id"`
	User         ActorResponse             `json:"user"`
	Hotel        ReservationHotelResponse  `json:"hotel"`
	Rooms        []ReservationRoomResponse `json:"rooms"`
	CheckInDate  string                    `json:"checkInDate"`
	CheckOutDate string                    `json:"checkOutDate"`
	GuestCount   int                       `json:"guestCount"`
	Status       int                       `json:"status"`
	Nights       int                       `json:"nights"`
	TotalPrice   int                       `json:"totalPrice"`
	CreatedAt    time.Time                 `json:"createdAt"`
	UpdatedAt    time.Time                 `json:"updatedAt"`
}
