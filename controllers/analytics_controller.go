package controllers

import (
	"strconv"
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"

	"github.com/gin-gonic/gin"
)

// GetAnalyticsOverview answers the back-office dashboard counters.
func GetAnalyticsOverview(c *gin.Context) {
	var overview dto.AnalyticsOverviewResponse

	counts := []struct {
		model  interface{}
		target *int64
	}{
		{&models.City{}, &overview.Cities},
		{&models.Hotel{}, &overview.Hotels},
		{&models.Room{}, &overview.Rooms},
		{&models.User{}, &overview.Users},
		{&models.Reservation{}, &overview.Reservations},
	}
	for _, count := range counts {
		if err := config.DB.Model(count.model).Count(count.target).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, overview)
}

// GetRevenue sums completed and confirmed reservation totals per day over
// the requested window (default: last 30 days).
func GetRevenue(c *gin.Context) {
	days := 30
	if daysStr := c.Query("days"); daysStr != "" {
		if parsed, err := strconv.Atoi(daysStr); err == nil && parsed > 0 {
			days = parsed
		}
	}
	since := time.Now().AddDate(0, 0, -days)

	var reservations []models.Reservation
	err := config.DB.
		Where("status IN ? AND created_at >= ?",
			[]int{constants.ReservationStatusConfirmed, constants.ReservationStatusCompleted}, since).
		Order("created_at").
		Find(&reservations).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	byDay := make(map[string]*dto.RevenuePoint)
	var order []string
	var total int64

	for _, r := range reservations {
		day := r.CreatedAt.Format("2006-01-02")
		point, ok := byDay[day]
		if !ok {
			point = &dto.RevenuePoint{Date: day}
			byDay[day] = point
			order = append(order, day)
		}
		point.Revenue += int64(r.TotalPrice)
		point.Count++
		total += int64(r.TotalPrice)
	}

	points := make([]dto.RevenuePoint, 0, len(order))
	for _, day := range order {
		points = append(points, *byDay[day])
	}

	response.Success(c, dto.RevenueResponse{Total: total, Points: points})
}
