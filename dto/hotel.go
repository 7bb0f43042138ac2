package dto

import "encoding/json"

type HotelRequest struct {
	ID               uint            `json:"id"`
	CityID           uint            `json:"cityId"`
	Name             string          `json:"name"`
	Address          string          `json:"address"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Stars            int             `json:"stars"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img"`
	Status           int             `json:"status"`
	TimeCheckIn      string          `json:"timeCheckIn"`
	TimeCheckOut     string          `json:"timeCheckOut"`
	Longitude        float64         `json:"longitude"`
	Latitude         float64         `json:"latitude"`
}

type HotelResponse struct {
	ID               uint    `json:"id"`
	CityID           uint    `json:"cityId"`
	CityName         string  `json:"cityName"`
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	ShortDescription string  `json:"shortDescription"`
	Stars            int     `json:"stars"`
	Avatar           string  `json:"avatar"`
	Status           int     `json:"status"`
	MinPrice         float64 `json:"minPrice"`
}

// HotelOfferResponse is one hotel in search results together with the best
// room combination found for the request.
type HotelOfferResponse struct {
	Hotel      HotelResponse  `json:"hotel"`
	Rooms      []RoomResponse `json:"rooms"`
	Nights     int            `json:"nights"`
	TotalPrice int            `json:"totalPrice"`
}

// HotelSummary is the compact shape chat answers use.
type HotelSummary struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Avatar string  `json:"avatar"`
	Stars  int     `json:"stars"`
	Price  float64 `json:"price"`
}

// SearchHotelsRequest is the query surface of GET /search.
type SearchHotelsRequest struct {
	Destination  string `form:"destination"`
	CheckInDate  string `form:"checkInDate"`
	CheckOutDate string `form:"checkOutDate"`
	GuestCount   int    `form:"guestCount"`
	RoomCount    int    `form:"roomCount"`
}
