package controllers

import (
	"fmt"
	"strconv"
	"time"

	"stayhub/booking"
	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

const hotelCacheKey = "hotels:all"

func toHotelResponse(hotel models.Hotel, minPrice float64) dto.HotelResponse {
	return dto.HotelResponse{
		ID:               hotel.ID,
		CityID:           hotel.CityID,
		CityName:         hotel.City.Name,
		Name:             hotel.Name,
		Address:          hotel.Address,
		ShortDescription: hotel.ShortDescription,
		Stars:            hotel.Stars,
		Avatar:           hotel.Avatar,
		Status:           hotel.Status,
		MinPrice:         minPrice,
	}
}

func minRoomPrice(rooms []models.Room) float64 {
	if len(rooms) == 0 {
		return 0
	}
	min := rooms[0].Price
	for _, room := range rooms {
		if room.Price < min {
			min = room.Price
		}
	}
	return min
}

func parsePaging(c *gin.Context) (int, int) {
	page := 0
	limit := 10
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}
	return page, limit
}

// GetHotels lists hotels for the back-office with paging, served from redis
// when warm.
func GetHotels(c *gin.Context) {
	var hotels []models.Hotel

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, hotelCacheKey, &hotels); err != nil || len(hotels) == 0 {
		if err := config.DB.Preload("City").Preload("Rooms").Find(&hotels).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(config.Ctx, config.RedisClient, hotelCacheKey, hotels, 10*time.Minute); err != nil {
			fmt.Println("cannot cache hotels:", err)
		}
	}

	if cityIDStr := c.Query("cityId"); cityIDStr != "" {
		cityID, err := strconv.Atoi(cityIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid cityId")
			return
		}
		filtered := make([]models.Hotel, 0, len(hotels))
		for _, hotel := range hotels {
			if hotel.CityID == uint(cityID) {
				filtered = append(filtered, hotel)
			}
		}
		hotels = filtered
	}

	total := len(hotels)
	page, limit := parsePaging(c)
	start := page * limit
	end := start + limit
	if start >= total {
		hotels = []models.Hotel{}
	} else if end > total {
		hotels = hotels[start:]
	} else {
		hotels = hotels[start:end]
	}

	var results []dto.HotelResponse
	for _, hotel := range hotels {
		results = append(results, toHotelResponse(hotel, minRoomPrice(hotel.Rooms)))
	}

	response.SuccessWithPagination(c, results, page, limit, total)
}

func GetHotelDetail(c *gin.Context) {
	var hotel models.Hotel
	if err := config.DB.Preload("City").Preload("Rooms").First(&hotel, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, hotel)
}

func CreateHotel(c *gin.Context) {
	var req dto.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	userID := c.GetUint("userID")
	hotel := models.Hotel{
		CityID:           req.CityID,
		UserID:           userID,
		Name:             req.Name,
		Address:          req.Address,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Stars:            req.Stars,
		Avatar:           req.Avatar,
		Img:              req.Img,
		Status:           constants.HotelStatusActive,
		TimeCheckIn:      req.TimeCheckIn,
		TimeCheckOut:     req.TimeCheckOut,
		Longitude:        req.Longitude,
		Latitude:         req.Latitude,
	}
	if err := hotel.ValidateStars(); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, hotelCacheKey)
	response.Success(c, hotel)
}

func UpdateHotel(c *gin.Context) {
	var req dto.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	hotel.CityID = req.CityID
	hotel.Name = req.Name
	hotel.Address = req.Address
	hotel.ShortDescription = req.ShortDescription
	hotel.Description = req.Description
	hotel.Stars = req.Stars
	hotel.Avatar = req.Avatar
	hotel.Img = req.Img
	hotel.TimeCheckIn = req.TimeCheckIn
	hotel.TimeCheckOut = req.TimeCheckOut
	hotel.Longitude = req.Longitude
	hotel.Latitude = req.Latitude
	if err := hotel.ValidateStars(); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, hotelCacheKey)
	response.Success(c, hotel)
}

func ChangeHotelStatus(c *gin.Context) {
	var req struct {
		ID     uint `json:"id"`
		Status int  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	if err := config.DB.Model(&models.Hotel{}).Where("id = ?", req.ID).Update("status", req.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, hotelCacheKey)
	response.Success(c, nil)
}

// SearchHotels answers the guest-facing search: destination (fuzzy-matched
// against city names), stay dates, guest and room counts. Each hotel in the
// result carries its first satisfying room combination and the total price
// for the stay.
func SearchHotels(c *gin.Context) {
	var req dto.SearchHotelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query")
		return
	}
	if req.GuestCount <= 0 {
		req.GuestCount = 1
	}
	if req.RoomCount <= 0 {
		req.RoomCount = 1
	}

	stay, err := services.ParseStay(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidRange) {
			response.BadRequest(c, "Check-in must be before check-out")
			return
		}
		response.BadRequest(c, "Invalid dates, use dd/mm/yyyy")
		return
	}

	var cities []models.City
	if err := config.DB.Find(&cities).Error; err != nil {
		response.ServerError(c)
		return
	}
	destination := services.MatchDestination(req.Destination, cities)
	if destination == "" && req.Destination != "" {
		response.Success(c, []dto.HotelOfferResponse{})
		return
	}

	tx := config.DB.Preload("City").Preload("Rooms").Where("hotels.status = ?", constants.HotelStatusActive)
	if destination != "" {
		tx = tx.Joins("JOIN cities ON cities.id = hotels.city_id").Where("cities.name = ?", destination)
	}
	var hotels []models.Hotel
	if err := tx.Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}

	store := services.NewRoomStore(config.DB)
	nights := booking.Nights(stay.Start, stay.End)

	var offers []dto.HotelOfferResponse
	for _, hotel := range hotels {
		rooms, err := store.FetchRooms(c.Request.Context(), hotel.ID)
		if err != nil {
			response.ServerError(c)
			return
		}

		combination, err := booking.Search(rooms, stay, req.GuestCount, req.RoomCount)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		if combination == nil {
			// The hotel cannot host this request; that is a normal miss,
			// not an error.
			continue
		}

		var roomResponses []dto.RoomResponse
		for _, room := range combination {
			roomResponses = append(roomResponses, dto.RoomResponse{
				RoomID:      room.ID,
				HotelID:     hotel.ID,
				RoomNumber:  room.RoomNumber,
				RoomType:    room.TypeName,
				BedCapacity: room.BedCapacity,
				Price:       room.Price,
			})
		}

		offers = append(offers, dto.HotelOfferResponse{
			Hotel:      toHotelResponse(hotel, minRoomPrice(hotel.Rooms)),
			Rooms:      roomResponses,
			Nights:     nights,
			TotalPrice: booking.TotalPrice(combination, nights),
		})
	}

	response.Success(c, offers)
}
