package services

import (
	"testing"
	"time"

	"stayhub/booking"
	apperrors "stayhub/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStay(t *testing.T) {
	stay, err := ParseStay("10/01/2026", "12/01/2026")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), stay.Start)
	assert.Equal(t, time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), stay.End)
}

func TestParseStayBadFormat(t *testing.T) {
	_, err := ParseStay("2026-01-10", "12/01/2026")
	require.Error(t, err)
	assert.True(t, apperrors.IsAppError(err))
	assert.Equal(t, apperrors.ErrCodeInvalidFormat, apperrors.GetAppError(err).Code)

	_, err = ParseStay("10/01/2026", "not a date")
	assert.True(t, apperrors.IsAppError(err))
}

func TestParseStayReversedDates(t *testing.T) {
	_, err := ParseStay("12/01/2026", "10/01/2026")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)

	_, err = ParseStay("10/01/2026", "10/01/2026")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)
}

func TestBuildSelection(t *testing.T) {
	rooms := []booking.RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 2},
		{ID: 2, RoomNumber: "102", BedCapacity: 2},
	}

	assert.True(t, buildSelection(rooms, 4).IsComplete())
	assert.False(t, buildSelection(rooms, 5).IsComplete(), "not enough beds for the guests")
	assert.Len(t, buildSelection(rooms, 4).Rooms(), 2)
}

func TestBuildSelectionDuplicateRoom(t *testing.T) {
	// The same room picked twice toggles itself off, so the selection never
	// reaches the requested size.
	rooms := []booking.RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 4},
		{ID: 1, RoomNumber: "101", BedCapacity: 4},
	}

	assert.False(t, buildSelection(rooms, 2).IsComplete())
}
