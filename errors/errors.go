package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies application errors for the API envelope.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Booking errors
	ErrCodeInvalidRange   ErrorCode = "INVALID_RANGE"
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrCodeRoomBooked     ErrorCode = "ROOM_BOOKED"
	ErrCodePartialWrite   ErrorCode = "PARTIAL_WRITE"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError carries a code alongside the message so controllers can map it
// onto the response envelope.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Unwrap exposes the cause so errors.Is and errors.As see through an
// AppError to the wrapped sentinel.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is and As re-export the stdlib helpers so callers only import one errors
// package.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target interface{}) bool { return errors.As(err, target) }

// IsAppError reports whether err is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError unwraps the AppError from err, or returns nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// AggregateError reports that some of the fanned-out writes of a multi-room
// operation failed. Writes that succeeded before the failure are not rolled
// back; the caller decides whether to retry.
type AggregateError struct {
	Total  int
	Failed []error
}

func NewAggregateError(total int, failed []error) *AggregateError {
	return &AggregateError{Total: total, Failed: failed}
}

func (e *AggregateError) Error() string {
	msgs := make([]string, 0, len(e.Failed))
	for _, err := range e.Failed {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d of %d room writes failed: %s", len(e.Failed), e.Total, strings.Join(msgs, "; "))
}

var (
	// Booking errors
	ErrInvalidRange   = errors.New("check-in must be before check-out")
	ErrInvalidRequest = errors.New("guest and room counts must be positive")
	ErrRoomBooked     = errors.New("room is already booked for these dates")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Reservation errors
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrReservationCancelled = errors.New("reservation already cancelled")
	ErrReservationCompleted = errors.New("reservation already completed")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
