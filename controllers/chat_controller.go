package controllers

import (
	"fmt"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

// ChatSearchHandler is the REST twin of the websocket chat: one message in,
// merged filters and matching hotels out.
func ChatSearchHandler(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		response.BadRequest(c, "message is required")
		return
	}

	userID := 0
	if id, exists := c.Get("userID"); exists {
		userID = int(id.(uint))
	}
	sessionID := c.GetString("sessionId")
	redisKey := services.GetCacheKey(userID, sessionID)

	var cities []models.City
	if err := config.DB.Find(&cities).Error; err != nil {
		response.ServerError(c)
		return
	}

	filters := services.ExtractSearchFilters(req.Message, cities)
	if prev, _ := services.GetLastFilters(config.Ctx, config.RedisClient, redisKey); prev != nil {
		filters = services.MergeFilters(prev, filters)
	}
	_ = services.SaveLastFilters(config.Ctx, config.RedisClient, redisKey, filters)

	hotels, err := services.SearchHotels(c.Request.Context(), config.DB, filters)
	if err != nil {
		response.ServerError(c)
		return
	}

	reply := fmt.Sprintf("Found %d hotels for your request.", len(hotels))
	if len(hotels) == 0 {
		reply = "No hotels match the current filters. Try different dates or another destination."
	}

	_ = services.SaveChatHistory(config.DB, userID, sessionID, "user", "text", req.Message)
	_ = services.SaveChatHistory(config.DB, userID, sessionID, "bot", "text", reply)

	response.Success(c, dto.ChatResponse{
		Reply:   reply,
		Filters: *filters,
		Hotels:  hotels,
	})
}
