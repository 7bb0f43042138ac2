package controllers

import (
	"strings"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Avatar:      user.Avatar,
		Role:        user.Role,
		Status:      user.Status,
	}
}

func RegisterUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	if err := validator.ValidateRegister(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	user, err := services.Register(config.DB, req)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	token, user, err := services.Login(config.DB, req)
	if err != nil {
		if errors.Is(err, errors.ErrUserNotFound) || errors.Is(err, errors.ErrInvalidPassword) {
			response.BadRequest(c, "Wrong email/phone or password")
			return
		}
		if errors.Is(err, errors.ErrUnauthorized) {
			response.Forbidden(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// GetProfile answers the account behind the bearer token.
func GetProfile(c *gin.Context) {
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

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toUserResponse(&user))
}
