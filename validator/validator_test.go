package validator

import (
	"testing"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegister(t *testing.T) {
	valid := dto.RegisterRequest{
		Name:        "Alice",
		Email:       "alice@example.com",
		Password:    "secret1",
		PhoneNumber: "0912345678",
	}
	assert.NoError(t, ValidateRegister(&valid))

	tests := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
		code   errors.ErrorCode
	}{
		{"missing email", func(r *dto.RegisterRequest) { r.Email = "" }, errors.ErrCodeRequiredField},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, errors.ErrCodeInvalidEmail},
		{"missing password", func(r *dto.RegisterRequest) { r.Password = "" }, errors.ErrCodeRequiredField},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "abc" }, errors.ErrCodeValidation},
		{"missing phone", func(r *dto.RegisterRequest) { r.PhoneNumber = "" }, errors.ErrCodeRequiredField},
		{"bad phone", func(r *dto.RegisterRequest) { r.PhoneNumber = "12ab" }, errors.ErrCodeInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := ValidateRegister(&req)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetAppError(err).Code)
		})
	}
}

func TestValidateRoom(t *testing.T) {
	room := models.Room{HotelID: 1, RoomNumber: "101", BedCapacity: 2, Price: 100}
	assert.NoError(t, ValidateRoom(&room))

	bad := room
	bad.BedCapacity = 0
	assert.Error(t, ValidateRoom(&bad))

	bad = room
	bad.Price = -1
	assert.Error(t, ValidateRoom(&bad))

	bad = room
	bad.RoomNumber = ""
	assert.Error(t, ValidateRoom(&bad))
}

func TestValidateReservationRequest(t *testing.T) {
	valid := dto.CreateReservationRequest{
		HotelID:      1,
		RoomID:       []uint{1, 2},
		GuestCount:   3,
		CheckInDate:  "10/01/2026",
		CheckOutDate: "12/01/2026",
		UserID:       7,
	}
	assert.NoError(t, ValidateReservationRequest(&valid))

	bad := valid
	bad.RoomID = nil
	assert.Error(t, ValidateReservationRequest(&bad))

	bad = valid
	bad.GuestCount = 0
	assert.Error(t, ValidateReservationRequest(&bad))

	// Anonymous bookings need a contact phone.
	bad = valid
	bad.UserID = 0
	bad.GuestPhone = ""
	assert.Error(t, ValidateReservationRequest(&bad))

	bad.GuestPhone = "0912345678"
	assert.NoError(t, ValidateReservationRequest(&bad))
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole(constants.RoleUser))
	assert.NoError(t, ValidateRole(constants.RoleReceptionist))
	assert.Error(t, ValidateRole(42))
}
