package booking

import (
	"testing"

	apperrors "stayhub/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCombinationSingleRoom(t *testing.T) {
	rooms := []RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 2},
		{ID: 2, RoomNumber: "102", BedCapacity: 6},
		{ID: 3, RoomNumber: "103", BedCapacity: 8},
	}

	// First room with enough beds wins, not the best fit.
	combo, err := FindCombination(rooms, 1, 5)
	require.NoError(t, err)
	require.Len(t, combo, 1)
	assert.Equal(t, "102", combo[0].RoomNumber)
}

func TestFindCombinationSingleRoomNoneFits(t *testing.T) {
	rooms := []RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 2},
		{ID: 2, RoomNumber: "102", BedCapacity: 3},
	}

	combo, err := FindCombination(rooms, 1, 4)
	require.NoError(t, err)
	assert.Nil(t, combo)
}

func TestFindCombinationMultiRoom(t *testing.T) {
	rooms := []RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 2},
		{ID: 2, RoomNumber: "102", BedCapacity: 2},
		{ID: 3, RoomNumber: "103", BedCapacity: 4},
	}

	// Lexicographic order: {101,102} has capacity 4 >= 3 and is tried first.
	combo, err := FindCombination(rooms, 2, 3)
	require.NoError(t, err)
	require.Len(t, combo, 2)
	assert.Equal(t, "101", combo[0].RoomNumber)
	assert.Equal(t, "102", combo[1].RoomNumber)
}

func TestFindCombinationSkipsUndersizedPrefix(t *testing.T) {
	rooms := []RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 1},
		{ID: 2, RoomNumber: "102", BedCapacity: 1},
		{ID: 3, RoomNumber: "103", BedCapacity: 4},
	}

	// {101,102} sleeps only 2, so the search moves on to {101,103}.
	combo, err := FindCombination(rooms, 2, 5)
	require.NoError(t, err)
	require.Len(t, combo, 2)
	assert.Equal(t, "101", combo[0].RoomNumber)
	assert.Equal(t, "103", combo[1].RoomNumber)
}

func TestFindCombinationExactSize(t *testing.T) {
	rooms := []RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 2},
		{ID: 2, RoomNumber: "102", BedCapacity: 2},
		{ID: 3, RoomNumber: "103", BedCapacity: 2},
		{ID: 4, RoomNumber: "104", BedCapacity: 2},
	}

	for roomCount := 1; roomCount <= 4; roomCount++ {
		combo, err := FindCombination(rooms, roomCount, roomCount)
		require.NoError(t, err)
		assert.Len(t, combo, roomCount, "a found combination always has exactly roomCount rooms")
	}
}

func TestFindCombinationFewerRoomsThanRequested(t *testing.T) {
	rooms := []RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 10},
	}

	combo, err := FindCombination(rooms, 2, 2)
	require.NoError(t, err)
	assert.Nil(t, combo)
}

func TestFindCombinationCapacityUnreachable(t *testing.T) {
	rooms := []RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 2},
		{ID: 2, RoomNumber: "102", BedCapacity: 2},
	}

	combo, err := FindCombination(rooms, 2, 10)
	require.NoError(t, err)
	assert.Nil(t, combo)
}

func TestFindCombinationInvalidCounts(t *testing.T) {
	rooms := []RoomOption{{ID: 1, RoomNumber: "101", BedCapacity: 2}}

	_, err := FindCombination(rooms, 0, 2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)

	_, err = FindCombination(rooms, 1, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)

	_, err = FindCombination(rooms, -1, -3)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
}

func TestFindCombinationNotCheapest(t *testing.T) {
	rooms := []RoomOption{
		{ID: 1, RoomNumber: "101", BedCapacity: 4, Price: 500},
		{ID: 2, RoomNumber: "102", BedCapacity: 4, Price: 100},
	}

	// Input order decides, price does not.
	combo, err := FindCombination(rooms, 1, 3)
	require.NoError(t, err)
	require.Len(t, combo, 1)
	assert.Equal(t, "101", combo[0].RoomNumber)
}
