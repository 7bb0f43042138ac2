package services

import (
	"context"
	"encoding/json"
	"log"

	"stayhub/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HandleUserMessageWS drives one turn of the chat-assisted search over the
// websocket: parse the message into filters, merge with the session's
// previous filters from redis, search, and answer with a reply plus hotel
// summaries.
func HandleUserMessageWS(
	ctx context.Context,
	db *gorm.DB,
	rdb *redis.Client,
	redisKey string,
	userID int,
	userInput string,
) [][]byte {
	var responses [][]byte

	if userInput == "reset" {
		if err := ClearLastFilters(ctx, rdb, redisKey); err != nil {
			log.Println("ClearLastFilters:", err)
		}
		responses = append(responses, []byte("Search filters reset."))
		return responses
	}

	var cities []models.City
	if err := db.Find(&cities).Error; err != nil {
		responses = append(responses, []byte("Could not process the request."))
		return responses
	}

	filters := ExtractSearchFilters(userInput, cities)

	prevFilters, _ := GetLastFilters(ctx, rdb, redisKey)
	if prevFilters != nil {
		filters = MergeFilters(prevFilters, filters)
	}

	_ = SaveLastFilters(ctx, rdb, redisKey, filters)

	summaries, err := SearchHotels(ctx, db, filters)
	if err != nil {
		responses = append(responses, []byte("Search failed: "+err.Error()))
		return responses
	}

	if len(summaries) == 0 {
		responses = append(responses, []byte("No hotels match the current filters. Try different dates or another destination."))
		return responses
	}

	hotelJSON, err := json.Marshal(summaries)
	if err != nil {
		responses = append(responses, []byte("Could not send the hotel results."))
		return responses
	}
	responses = append(responses, hotelJSON)

	_ = SaveChatHistory(db, userID, redisKey, "user", "text", userInput)
	_ = SaveChatHistory(db, userID, redisKey, "bot", "hotels", string(hotelJSON))

	return responses
}
