package services

import (
	"context"

	"stayhub/booking"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"

	"gorm.io/gorm"
)

// SearchHotels answers both the search endpoint and the chat assistant:
// narrow hotels by destination/stars/price, then, when the filters carry a
// stay window, keep only hotels whose rooms can actually host the request.
func SearchHotels(ctx context.Context, db *gorm.DB, filters *dto.SearchFilters) ([]dto.HotelSummary, error) {
	tx := db.WithContext(ctx).Model(&models.Hotel{}).
		Preload("City").
		Where("hotels.status = ?", constants.HotelStatusActive)

	if filters.Destination != "" {
		tx = tx.Joins("JOIN cities ON cities.id = hotels.city_id").
			Where("cities.name = ?", filters.Destination)
	}
	if filters.Stars != nil {
		tx = tx.Where("hotels.stars = ?", *filters.Stars)
	}

	var hotels []models.Hotel
	if err := tx.Find(&hotels).Error; err != nil {
		return nil, err
	}

	store := NewRoomStore(db)
	var summaries []dto.HotelSummary

	for _, hotel := range hotels {
		rooms, err := store.FetchRooms(ctx, hotel.ID)
		if err != nil {
			return nil, err
		}
		if len(rooms) == 0 {
			continue
		}

		minPrice := rooms[0].Price
		for _, room := range rooms {
			if room.Price < minPrice {
				minPrice = room.Price
			}
		}
		if filters.PriceMin != nil && minPrice < *filters.PriceMin {
			continue
		}
		if filters.PriceMax != nil && minPrice > *filters.PriceMax {
			continue
		}

		if filters.FromDate != nil && filters.ToDate != nil {
			stay, err := booking.NewDateRange(*filters.FromDate, *filters.ToDate)
			if err != nil {
				return nil, err
			}

			guests, roomCount := 1, 1
			if filters.GuestCount != nil {
				guests = *filters.GuestCount
			}
			if filters.RoomCount != nil {
				roomCount = *filters.RoomCount
			}

			combination, err := booking.Search(rooms, stay, guests, roomCount)
			if err != nil {
				return nil, err
			}
			if combination == nil {
				continue
			}
		}

		summaries = append(summaries, dto.HotelSummary{
			ID:     hotel.ID,
			Name:   hotel.Name,
			Avatar: hotel.Avatar,
			Stars:  hotel.Stars,
			Price:  minPrice,
		})
	}
	return summaries, nil
}
