package controllers

import (
	"fmt"
	"time"

	"stayhub/config"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

const cityCacheKey = "cities:all"

func GetCities(c *gin.Context) {
	var cities []models.City

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cityCacheKey, &cities); err != nil || len(cities) == 0 {
		if err := config.DB.Order("name").Find(&cities).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(config.Ctx, config.RedisClient, cityCacheKey, cities, 30*time.Minute); err != nil {
			fmt.Println("cannot cache cities:", err)
		}
	}

	response.Success(c, cities)
}

func GetCityDetail(c *gin.Context) {
	var city models.City
	if err := config.DB.First(&city, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, city)
}

func CreateCity(c *gin.Context) {
	var city models.City
	if err := c.ShouldBindJSON(&city); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}
	if city.Name == "" {
		response.ValidationError(c, "City name is required")
		return
	}

	if err := config.DB.Create(&city).Error; err != nil {
		response.Conflict(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, cityCacheKey)
	response.Success(c, city)
}

func UpdateCity(c *gin.Context) {
	var payload models.City
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var city models.City
	if err := config.DB.First(&city, payload.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	city.Name = payload.Name
	city.Country = payload.Country
	city.Avatar = payload.Avatar
	if err := config.DB.Save(&city).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, cityCacheKey)
	response.Success(c, city)
}

func DeleteCity(c *gin.Context) {
	if err := config.DB.Delete(&models.City{}, c.Param("id")).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, cityCacheKey)
	response.Success(c, nil)
}
