package services

import (
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// HashPassword hashes with bcrypt's default cost.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// Register creates a regular user account.
func Register(db *gorm.DB, req dto.RegisterRequest) (*models.User, error) {
	var existing models.User
	err := db.Where("email = ? OR phone_number = ?", req.Email, req.PhoneNumber).First(&existing).Error
	if err == nil {
		return nil, errors.NewAppError(errors.ErrCodeUserExists, "Email or phone number already registered", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot check existing users", err)
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Cannot hash password", err)
	}

	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		PhoneNumber: req.PhoneNumber,
		Role:        constants.RoleUser,
		Status:      constants.UserStatusActive,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot create user", err)
	}
	return &user, nil
}

// Login authenticates by email or phone number and issues a token.
func Login(db *gorm.DB, req dto.LoginRequest) (string, *models.User, error) {
	var user models.User
	err := db.Where("email = ? OR phone_number = ?", req.Identifier, req.Identifier).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errors.ErrUserNotFound
		}
		return "", nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot load user", err)
	}

	if user.Status != constants.UserStatusActive {
		return "", nil, errors.ErrUnauthorized
	}
	if !CheckPassword(user.Password, req.Password) {
		return "", nil, errors.ErrInvalidPassword
	}

	token, err := GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot sign token", err)
	}
	return token, &user, nil
}
