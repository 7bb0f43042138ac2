package dto

import "time"

// SearchFilters is what the chat parser extracts from a free-text message.
// Nil fields mean "not mentioned"; the session's previous filters fill the
// gaps.
type SearchFilters struct {
	Destination string     `json:"destination,omitempty"`
	FromDate    *time.Time `json:"fromDate,omitempty"`
	ToDate      *time.Time `json:"toDate,omitempty"`
	GuestCount  *int       `json:"guestCount,omitempty"`
	RoomCount   *int       `json:"roomCount,omitempty"`
	Stars       *int       `json:"stars,omitempty"`
	PriceMin    *float64   `json:"priceMin,omitempty"`
	PriceMax    *float64   `json:"priceMax,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply   string         `json:"reply"`
	Filters SearchFilters  `json:"filters"`
	Hotels  []HotelSummary `json:"hotels,omitempty"`
}
