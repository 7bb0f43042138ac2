package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"stayhub/dto"

	"github.com/redis/go-redis/v9"
)

// GetCacheKey keys chat sessions by user id when logged in, otherwise by
// the anonymous session id.
func GetCacheKey(userID int, sessionID string) string {
	if userID > 0 {
		return strconv.Itoa(userID)
	}
	return sessionID
}

func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.SearchFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+key, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.SearchFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.SearchFilters
	if err := json.Unmarshal([]byte(val), &filters); err != nil {
		return nil, err
	}
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// MergeFilters lets a follow-up message refine the previous search instead
// of starting over. New values win; untouched fields carry over.
func MergeFilters(old, incoming *dto.SearchFilters) *dto.SearchFilters {
	incoming.Destination = orString(incoming.Destination, old.Destination)
	incoming.FromDate = orTimePointer(incoming.FromDate, old.FromDate)
	incoming.ToDate = orTimePointer(incoming.ToDate, old.ToDate)
	incoming.GuestCount = orIntPointer(incoming.GuestCount, old.GuestCount)
	incoming.RoomCount = orIntPointer(incoming.RoomCount, old.RoomCount)
	incoming.Stars = orIntPointer(incoming.Stars, old.Stars)

	// A new minimum above the old maximum (or the other way round) drops
	// the stale bound instead of producing an empty window.
	if incoming.PriceMin != nil && old.PriceMax != nil && *incoming.PriceMin > *old.PriceMax {
		incoming.PriceMax = nil
	} else {
		incoming.PriceMax = orFloatPointer(incoming.PriceMax, old.PriceMax)
	}
	if incoming.PriceMax != nil && old.PriceMin != nil && *incoming.PriceMax < *old.PriceMin {
		incoming.PriceMin = nil
	} else {
		incoming.PriceMin = orFloatPointer(incoming.PriceMin, old.PriceMin)
	}
	return incoming
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orFloatPointer(newVal, oldVal *float64) *float64 {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orTimePointer(newVal, oldVal *time.Time) *time.Time {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
