package booking

import (
	"testing"

	apperrors "stayhub/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	rooms := []RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 2, Booked: []DateRange{
			{Start: date(10), End: date(12)},
		}},
		{ID: 2, RoomNumber: "102", BedCapacity: 2},
		{ID: 3, RoomNumber: "103", BedCapacity: 4},
	}

	// The stay starts on 101's checkout day, so all three rooms qualify.
	combo, err := Search(rooms, DateRange{Start: date(12), End: date(14)}, 3, 2)
	require.NoError(t, err)
	require.Len(t, combo, 2)
	assert.Equal(t, "101", combo[0].RoomNumber)
	assert.Equal(t, "102", combo[1].RoomNumber)
	assert.GreaterOrEqual(t, combo[0].BedCapacity+combo[1].BedCapacity, 3)
}

func TestSearchBookedRoomExcluded(t *testing.T) {
	rooms := []RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 2, Booked: []DateRange{
			{Start: date(10), End: date(12)},
		}},
		{ID: 2, RoomNumber: "102", BedCapacity: 2},
	}

	// Requested stay overlaps 101's booking, leaving one room for a
	// two-room request.
	combo, err := Search(rooms, DateRange{Start: date(10), End: date(11)}, 2, 2)
	require.NoError(t, err)
	assert.Nil(t, combo)
}

func TestSearchInvalidStay(t *testing.T) {
	rooms := []RoomOption{{ID: 1, RoomNumber: "101", BedCapacity: 2}}

	_, err := Search(rooms, DateRange{Start: date(5), End: date(5)}, 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)
}

func TestSearchNoRooms(t *testing.T) {
	combo, err := Search(nil, DateRange{Start: date(1), End: date(2)}, 2, 1)
	require.NoError(t, err)
	assert.Nil(t, combo)
}
