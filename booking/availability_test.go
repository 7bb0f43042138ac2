package booking

import (
	"testing"

	apperrors "stayhub/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAvailable(t *testing.T) {
	rooms := []RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 2, Booked: []DateRange{
			{Start: date(10), End: date(12)},
		}},
		{ID: 2, RoomNumber: "102", BedCapacity: 2},
		{ID: 3, RoomNumber: "103", BedCapacity: 2, Booked: []DateRange{
			{Start: date(1), End: date(20)},
		}},
	}

	stay := DateRange{Start: date(11), End: date(13)}
	available, err := FilterAvailable(rooms, stay)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "102", available[0].RoomNumber)
}

func TestFilterAvailableBackToBackStay(t *testing.T) {
	// Booked Jan 10-12, requested Jan 12-14: checkout day frees the room.
	rooms := []RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 2, Booked: []DateRange{
			{Start: date(10), End: date(12)},
		}},
		{ID: 2, RoomNumber: "102", BedCapacity: 2},
	}

	available, err := FilterAvailable(rooms, DateRange{Start: date(12), End: date(14)})
	require.NoError(t, err)
	assert.Len(t, available, 2)
}

func TestFilterAvailablePreservesOrder(t *testing.T) {
	rooms := []RoomOption{
		{ID: 3, RoomNumber: "301"},
		{ID: 1, RoomNumber: "101"},
		{ID: 2, RoomNumber: "201"},
	}

	available, err := FilterAvailable(rooms, DateRange{Start: date(1), End: date(2)})
	require.NoError(t, err)
	require.Len(t, available, 3)
	assert.Equal(t, "301", available[0].RoomNumber)
	assert.Equal(t, "101", available[1].RoomNumber)
	assert.Equal(t, "201", available[2].RoomNumber)
}

func TestFilterAvailableInvalidStay(t *testing.T) {
	rooms := []RoomOption{{ID: 1, RoomNumber: "101"}}

	_, err := FilterAvailable(rooms, DateRange{Start: date(5), End: date(5)})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)
}

func TestFilterAvailableEmptyInput(t *testing.T) {
	available, err := FilterAvailable(nil, DateRange{Start: date(1), End: date(2)})
	require.NoError(t, err)
	assert.Empty(t, available)
}
