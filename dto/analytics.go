package dto

type AnalyticsOverviewResponse struct {
	Cities       int64 `json:"cities"`
	Hotels       int64 `json:"hotels"`
	Rooms        int64 `json:"rooms"`
	Users        int64 `json:"users"`
	Reservations int64 `json:"reservations"`
}

type RevenuePoint struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
	Count   int64  `json:"count"`
}

type RevenueResponse struct {
	Total  int64          `json:"total"`
	Points []RevenuePoint `json:"points"`
}
