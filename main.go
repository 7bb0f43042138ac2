package main

import (
	"log"
	"net/http"
	"os"

	"stayhub/config"
	"stayhub/jobs"
	"stayhub/models"
	"stayhub/routes"
	"stayhub/services"
	"stayhub/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: cannot load .env file, falling back to environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&models.City{}, &models.Hotel{}, &models.Room{}, &models.RoomStatus{},
		&models.User{}, &models.Reservation{}, &models.SavedHotel{}, &models.ChatHistory{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	reservationService := services.NewReservationService(config.DB, logger.NewDefaultLogger(logger.InfoLevel))

	if err := jobs.InitCronJobs(c, config.DB, reservationService); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
