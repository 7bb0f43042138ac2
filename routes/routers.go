package routes

import (
	"context"
	"encoding/json"

	"stayhub/constants"
	"stayhub/controllers"
	middlewares "stayhub/middleware"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	v1 := router.Group("/api/v1")

	// auth
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.GET("/profile", controllers.GetProfile)

	// guest-facing search and browsing
	v1.GET("/search", controllers.SearchHotels)
	v1.GET("/cities", controllers.GetCities)
	v1.GET("/cities/:id", controllers.GetCityDetail)
	v1.GET("/hotels/:id", controllers.GetHotelDetail)
	v1.GET("/rooms", controllers.GetRoomsByHotel)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.GET("/checkRoom", controllers.GetRoomBookingDates)

	// reservations
	v1.POST("/reservations", controllers.CreateReservation)
	v1.GET("/reservations", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleHotelAdmin, constants.RoleReceptionist), controllers.GetReservations)
	v1.GET("/reservations/:id", controllers.GetReservationDetail)
	v1.PUT("/reservations/:id/cancel", controllers.CancelReservation)
	v1.PUT("/reservations/:id/complete", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleHotelAdmin, constants.RoleReceptionist), controllers.CompleteReservation)
	v1.GET("/reservationHistory", controllers.GetReservationsByUser)

	// saved hotels
	v1.POST("/saved", middlewares.AuthMiddleware(), controllers.ToggleSavedHotel)
	v1.GET("/saved", middlewares.AuthMiddleware(), controllers.GetSavedHotels)

	// chat-assisted search
	v1.POST("/chat/search", middlewares.SessionMiddleware(), controllers.ChatSearchHandler)

	// back-office
	v1.POST("/cities", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.CreateCity)
	v1.PUT("/cities", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.UpdateCity)
	v1.DELETE("/cities/:id", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.DeleteCity)

	v1.GET("/hotels", controllers.GetHotels)
	v1.POST("/hotels", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleHotelAdmin), controllers.CreateHotel)
	v1.PUT("/hotels", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleHotelAdmin), controllers.UpdateHotel)
	v1.PUT("/hotelStatus", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleHotelAdmin), controllers.ChangeHotelStatus)

	v1.POST("/rooms", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleHotelAdmin), controllers.CreateRoom)
	v1.PUT("/rooms", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleHotelAdmin), controllers.UpdateRoom)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleHotelAdmin), controllers.ChangeRoomStatus)

	v1.GET("/users", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleHotelAdmin), controllers.GetUsers)
	v1.GET("/users/:id", controllers.GetUserByID)
	v1.POST("/users/staff", middlewares.AuthMiddleware(constants.RoleHotelAdmin), controllers.CreateStaffUser)
	v1.PUT("/users", middlewares.AuthMiddleware(), controllers.UpdateUser)
	v1.PUT("/userStatus", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.ChangeUserStatus)

	v1.GET("/analytics/overview", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleHotelAdmin), controllers.GetAnalyticsOverview)
	v1.GET("/analytics/revenue", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleHotelAdmin), controllers.GetRevenue)

	// websocket chat
	m.HandleMessage(func(s *melody.Session, msg []byte) {
		var incoming struct {
			UserID    int    `json:"userId"`
			SessionID string `json:"sessionId"`
			Text      string `json:"text"`
		}
		if err := json.Unmarshal(msg, &incoming); err != nil {
			s.Write([]byte("Invalid message."))
			return
		}

		redisKey := services.GetCacheKey(incoming.UserID, incoming.SessionID)
		responses := services.HandleUserMessageWS(context.Background(), db, redisCli, redisKey, incoming.UserID, incoming.Text)
		for _, resp := range responses {
			s.Write(resp)
		}
	})
}
