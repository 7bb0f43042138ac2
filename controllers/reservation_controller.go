package controllers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/services/logger"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

func reservationService() *services.ReservationService {
	return services.NewReservationService(config.DB, logger.NewDefaultLogger(logger.InfoLevel))
}

func toReservationResponse(r models.Reservation) dto.ReservationResponse {
	var actor dto.ActorResponse
	if r.User != nil {
		actor = dto.ActorResponse{Name: r.User.Name, Email: r.User.Email, PhoneNumber: r.User.PhoneNumber}
	} else {
		actor = dto.ActorResponse{Name: r.GuestName, Email: r.GuestEmail, PhoneNumber: r.GuestPhone}
	}

	var rooms []dto.ReservationRoomResponse
	for _, room := range r.Rooms {
		rooms = append(rooms, dto.ReservationRoomResponse{
			ID:         room.RoomID,
			RoomNumber: room.RoomNumber,
			RoomType:   room.RoomType,
			Price:      room.Price,
		})
	}

	return dto.ReservationResponse{
		ID:   r.ID,
		User: actor,
		Hotel: dto.ReservationHotelResponse{
			ID:      r.Hotel.ID,
			Name:    r.Hotel.Name,
			Address: r.Hotel.Address,
			Avatar:  r.Hotel.Avatar,
		},
		Rooms:        rooms,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		GuestCount:   r.GuestCount,
		Status:       r.Status,
		Nights:       r.Nights,
		TotalPrice:   r.TotalPrice,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func invalidateReservationCache(userID uint) {
	keys := []string{"reservations:all"}
	if userID != 0 {
		keys = append(keys, fmt.Sprintf("reservations:user:%d", userID))
	}
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, keys...)
}

// CreateReservation books the requested rooms. Logged-in users are resolved
// from the bearer token; walk-in guests book by name and phone.
func CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}
	if err := validator.ValidateReservationRequest(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	var userID *uint
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		id, err := services.GetIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			return
		}
		userID = &id
	} else if req.UserID != 0 {
		var user models.User
		if err := config.DB.First(&user, req.UserID).Error; err != nil {
			response.NotFound(c)
			return
		}
		userID = &user.ID
	}

	reservation, err := reservationService().Create(c.Request.Context(), req, userID)
	if err != nil {
		var aggErr *errors.AggregateError
		if errors.As(err, &aggErr) {
			// Some rooms were written, some were not. Surface the partial
			// failure instead of pretending the booking is clean.
			response.ServerErrorWithMessage(c, aggErr.Error())
			return
		}
		if errors.Is(err, errors.ErrInvalidRange) {
			response.BadRequest(c, "Check-in must be before check-out")
			return
		}
		if errors.Is(err, errors.ErrInvalidRequest) {
			response.BadRequest(c, "Guest and room counts must be positive")
			return
		}
		if errors.Is(err, errors.ErrRoomBooked) {
			response.BadRequest(c, "A selected room is already booked for these dates")
			return
		}
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("User").Preload("Hotel").Preload("Rooms").First(reservation, reservation.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	if userID != nil {
		invalidateReservationCache(*userID)
	} else {
		invalidateReservationCache(0)
	}
	response.Success(c, toReservationResponse(*reservation))
}

func CancelReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation id")
		return
	}

	reservation, err := reservationService().Cancel(c.Request.Context(), uint(id))
	if err != nil {
		var aggErr *errors.AggregateError
		if errors.As(err, &aggErr) {
			response.ServerErrorWithMessage(c, aggErr.Error())
			return
		}
		if errors.Is(err, errors.ErrReservationNotFound) {
			response.NotFound(c)
			return
		}
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	if reservation.UserID != nil {
		invalidateReservationCache(*reservation.UserID)
	} else {
		invalidateReservationCache(0)
	}
	response.Success(c, gin.H{"id": reservation.ID, "status": reservation.Status})
}

func CompleteReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation id")
		return
	}

	reservation, err := reservationService().Complete(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, errors.ErrReservationNotFound) {
			response.NotFound(c)
			return
		}
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	invalidateReservationCache(0)
	response.Success(c, gin.H{"id": reservation.ID, "status": reservation.Status})
}

// GetReservations lists reservations for the back-office. Hotel admins only
// see reservations of their own hotels; receptionists see their admin's.
func GetReservations(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	baseTx := config.DB.Model(&models.Reservation{}).
		Preload("Hotel").
		Preload("Rooms").
		Preload("User")

	if currentUserRole == constants.RoleHotelAdmin {
		baseTx = baseTx.Where("reservations.hotel_id IN (?)",
			config.DB.Model(&models.Hotel{}).Select("id").Where("user_id = ?", currentUserID))
	} else if currentUserRole == constants.RoleReceptionist {
		var adminID int
		if err := config.DB.Model(&models.User{}).Select("admin_id").Where("id = ?", currentUserID).Scan(&adminID).Error; err != nil || adminID == 0 {
			response.Forbidden(c)
			return
		}
		baseTx = baseTx.Where("reservations.hotel_id IN (?)",
			config.DB.Model(&models.Hotel{}).Select("id").Where("user_id = ?", adminID))
	}

	var reservations []models.Reservation
	if err := baseTx.Find(&reservations).Error; err != nil {
		response.ServerError(c)
		return
	}

	statusFilter := c.Query("status")
	phoneFilter := c.Query("phoneNumber")
	fromDateStr := c.Query("fromDate")

	filtered := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if statusFilter != "" {
			parsed, err := strconv.Atoi(statusFilter)
			if err == nil && r.Status != parsed {
				continue
			}
		}
		if phoneFilter != "" {
			phone := r.GuestPhone
			if r.User != nil {
				phone = r.User.PhoneNumber
			}
			if !strings.Contains(phone, phoneFilter) {
				continue
			}
		}
		if fromDateStr != "" {
			fromDate, err := time.Parse("02/01/2006", fromDateStr)
			if err != nil {
				response.BadRequest(c, "Invalid fromDate")
				return
			}
			if r.CreatedAt.Before(fromDate) {
				continue
			}
		}
		filtered = append(filtered, r)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	total := len(filtered)
	page, limit := parsePaging(c)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Reservation{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	var results []dto.ReservationResponse
	for _, r := range filtered {
		results = append(results, toReservationResponse(r))
	}

	response.SuccessWithPagination(c, results, page, limit, total)
}

func GetReservationDetail(c *gin.Context) {
	var reservation models.Reservation
	err := config.DB.Preload("User").Preload("Hotel").Preload("Rooms").
		First(&reservation, c.Param("id")).Error
	if err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, toReservationResponse(reservation))
}

// GetReservationsByUser answers the logged-in user's booking history.
func GetReservationsByUser(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, err := services.GetIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	cacheKey := fmt.Sprintf("reservations:user:%d", userID)
	var reservations []models.Reservation

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &reservations); err != nil || len(reservations) == 0 {
		err := config.DB.Preload("Hotel").Preload("Rooms").
			Where("user_id = ?", userID).
			Order("updated_at DESC").
			Find(&reservations).Error
		if err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, reservations, 10*time.Minute); err != nil {
			fmt.Println("cannot cache user reservations:", err)
		}
	}

	var results []dto.ReservationResponse
	for _, r := range reservations {
		results = append(results, toReservationResponse(r))
	}
	response.Success(c, results)
}
