package controllers

import (
	"stayhub/booking"
	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

func toRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		RoomID:      room.RoomID,
		HotelID:     room.HotelID,
		RoomNumber:  room.RoomNumber,
		RoomType:    room.RoomType,
		BedCapacity: room.BedCapacity,
		Price:       room.Price,
		Status:      room.Status,
		Avatar:      room.Avatar,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}

// GetRoomsByHotel lists a hotel's rooms grouped by room type. With
// checkInDate/checkOutDate query params only the rooms free for the whole
// stay are returned, so the room-picking screen never offers a busy room.
func GetRoomsByHotel(c *gin.Context) {
	hotelID := c.Query("hotelId")
	if hotelID == "" {
		response.BadRequest(c, "hotelId is required")
		return
	}

	var rooms []models.Room
	err := config.DB.Preload("Statuses", "status = ?", constants.RangeStatusBooked).
		Where("hotel_id = ? AND status = ?", hotelID, constants.RoomStatusAvailable).
		Order("room_id").
		Find(&rooms).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	options := make([]booking.RoomOption, 0, len(rooms))
	byNumber := make(map[string]models.Room, len(rooms))
	for _, room := range rooms {
		option := booking.RoomOption{
			ID:          room.RoomID,
			RoomNumber:  room.RoomNumber,
			TypeName:    room.RoomType,
			BedCapacity: room.BedCapacity,
			Price:       room.Price,
		}
		for _, status := range room.Statuses {
			option.Booked = append(option.Booked, booking.DateRange{Start: status.FromDate, End: status.ToDate})
		}
		options = append(options, option)
		byNumber[room.RoomNumber] = room
	}

	checkIn := c.Query("checkInDate")
	checkOut := c.Query("checkOutDate")
	if checkIn != "" && checkOut != "" {
		stay, err := services.ParseStay(checkIn, checkOut)
		if err != nil {
			response.BadRequest(c, "Invalid dates, use dd/mm/yyyy")
			return
		}
		options, err = booking.FilterAvailable(options, stay)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	var groups []dto.RoomTypeResponse
	for _, group := range booking.GroupByType(options) {
		typeResponse := dto.RoomTypeResponse{TypeName: group.TypeName}
		for _, option := range group.Rooms {
			typeResponse.Rooms = append(typeResponse.Rooms, toRoomResponse(byNumber[option.RoomNumber]))
		}
		groups = append(groups, typeResponse)
	}

	response.Success(c, groups)
}

func GetRoomDetail(c *gin.Context) {
	var room models.Room
	if err := config.DB.Preload("Hotel").First(&room, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, room)
}

// GetRoomBookingDates answers the booked calendar of one room.
func GetRoomBookingDates(c *gin.Context) {
	roomID := c.Query("roomId")
	if roomID == "" {
		response.BadRequest(c, "roomId is required")
		return
	}

	var statuses []models.RoomStatus
	err := config.DB.Where("room_id = ? AND status = ?", roomID, constants.RangeStatusBooked).
		Order("from_date").
		Find(&statuses).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	var ranges []dto.BookedRangeResponse
	for _, status := range statuses {
		ranges = append(ranges, dto.BookedRangeResponse{
			FromDate: status.FromDate.Format("02/01/2006"),
			ToDate:   status.ToDate.Format("02/01/2006"),
		})
	}

	response.Success(c, ranges)
}

func CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	room := models.Room{
		HotelID:     req.HotelID,
		RoomNumber:  req.RoomNumber,
		RoomType:    req.RoomType,
		BedCapacity: req.BedCapacity,
		Price:       req.Price,
		Acreage:     req.Acreage,
		Description: req.Description,
		Avatar:      req.Avatar,
		Img:         req.Img,
		Status:      constants.RoomStatusAvailable,
	}
	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, hotelCacheKey)
	response.Success(c, toRoomResponse(room))
}

func UpdateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.RoomNumber = req.RoomNumber
	room.RoomType = req.RoomType
	room.BedCapacity = req.BedCapacity
	room.Price = req.Price
	room.Acreage = req.Acreage
	room.Description = req.Description
	room.Avatar = req.Avatar
	room.Img = req.Img
	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, hotelCacheKey)
	response.Success(c, toRoomResponse(room))
}

func ChangeRoomStatus(c *gin.Context) {
	var req struct {
		ID     uint `json:"id"`
		Status int  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}
	if req.Status != constants.RoomStatusAvailable && req.Status != constants.RoomStatusMaintenance {
		response.ValidationError(c, "Invalid room status")
		return
	}

	if err := config.DB.Model(&models.Room{}).Where("room_id = ?", req.ID).Update("status", req.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, hotelCacheKey)
	response.Success(c, nil)
}
