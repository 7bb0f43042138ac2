package validator

import (
	"regexp"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{9,15}$`)
)

// ValidateRegister checks a signup request.
func ValidateRegister(req *dto.RegisterRequest) error {
	if req.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}
	if !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}
	if req.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required", nil)
	}
	if len(req.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must have at least 6 characters", nil)
	}
	if req.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phone number is required", nil)
	}
	if !isValidPhone(req.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}
	return nil
}

// ValidateRoom checks room data before create/update.
func ValidateRoom(room *models.Room) error {
	if room.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hotel is required", nil)
	}
	if room.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room number is required", nil)
	}
	if room.BedCapacity <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Bed capacity must be positive", nil)
	}
	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Price must not be negative", nil)
	}
	return nil
}

// ValidateReservationRequest checks the booking payload before any date
// parsing happens.
func ValidateReservationRequest(req *dto.CreateReservationRequest) error {
	if req.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hotel is required", nil)
	}
	if len(req.RoomID) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "At least one room is required", nil)
	}
	if req.GuestCount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidRequest, "Guest count must be positive", nil)
	}
	if req.CheckInDate == "" || req.CheckOutDate == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Check-in and check-out dates are required", nil)
	}
	if req.UserID == 0 && req.GuestPhone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Guest phone is required for anonymous bookings", nil)
	}
	return nil
}

// ValidateRole checks an assignable role value.
func ValidateRole(role int) error {
	switch role {
	case constants.RoleUser, constants.RoleSuperAdmin, constants.RoleHotelAdmin, constants.RoleReceptionist:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidRole, "Role is not valid", nil)
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
