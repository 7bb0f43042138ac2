package controllers

import (
	"strings"

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

// GetUsers lists accounts for the back-office with paging and an optional
// name/phone filter.
func GetUsers(c *gin.Context) {
	nameFilter := strings.ToLower(c.Query("name"))
	phoneFilter := c.Query("phoneNumber")

	var users []models.User
	if err := config.DB.Order("id").Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	filtered := make([]models.User, 0, len(users))
	for _, user := range users {
		if nameFilter != "" && !strings.Contains(strings.ToLower(user.Name), nameFilter) {
			continue
		}
		if phoneFilter != "" && !strings.Contains(user.PhoneNumber, phoneFilter) {
			continue
		}
		filtered = append(filtered, user)
	}

	total := len(filtered)
	page, limit := parsePaging(c)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.User{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	var results []dto.UserResponse
	for i := range filtered {
		results = append(results, toUserResponse(&filtered[i]))
	}
	response.SuccessWithPagination(c, results, page, limit, total)
}

func GetUserByID(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, toUserResponse(&user))
}

// CreateStaffUser lets a hotel admin create receptionist accounts bound to
// themselves.
func CreateStaffUser(c *gin.Context) {
	adminID := c.GetUint("userID")

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}
	if err := validator.ValidateRegister(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		PhoneNumber: req.PhoneNumber,
		Role:        constants.RoleReceptionist,
		Status:      constants.UserStatusActive,
		AdminID:     &adminID,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		response.Conflict(c)
		return
	}

	response.Success(c, toUserResponse(&user))
}

// UpdateUser lets users edit their own profile.
func UpdateUser(c *gin.Context) {
	userID := c.GetUint("userID")

	var req struct {
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(&user))
}

func ChangeUserStatus(c *gin.Context) {
	var req struct {
		ID     uint `json:"id"`
		Status int  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}
	if req.Status != constants.UserStatusActive && req.Status != constants.UserStatusInactive {
		response.ValidationError(c, "Invalid user status")
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", req.ID).Update("status", req.Status).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, nil)
}
