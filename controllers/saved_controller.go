package controllers

import (
	"stayhub/config"
	"stayhub/models"
	"stayhub/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ToggleSavedHotel bookmarks a hotel for the logged-in user, or removes the
// bookmark when it already exists.
func ToggleSavedHotel(c *gin.Context) {
	userID := c.GetUint("userID")

	var req struct {
		HotelID uint `json:"hotelId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.HotelID == 0 {
		response.BadRequest(c, "hotelId is required")
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, req.HotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var saved models.SavedHotel
	err := config.DB.Where("user_id = ? AND hotel_id = ?", userID, req.HotelID).First(&saved).Error
	if err == nil {
		if err := config.DB.Delete(&saved).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, gin.H{"saved": false})
		return
	}
	if err != gorm.ErrRecordNotFound {
		response.ServerError(c)
		return
	}

	saved = models.SavedHotel{UserID: userID, HotelID: req.HotelID}
	if err := config.DB.Create(&saved).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, gin.H{"saved": true})
}

// GetSavedHotels lists the user's bookmarks, newest first.
func GetSavedHotels(c *gin.Context) {
	userID := c.GetUint("userID")

	var saved []models.SavedHotel
	err := config.DB.Preload("Hotel").Preload("Hotel.City").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, saved)
}
