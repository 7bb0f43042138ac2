package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByType(t *testing.T) {
	rooms := []RoomOption{
		{RoomNumber: "101", TypeName: "Standard"},
		{RoomNumber: "201", TypeName: "Deluxe"},
		{RoomNumber: "102", TypeName: "Standard"},
		{RoomNumber: "301", TypeName: "Suite"},
	}

	groups := GroupByType(rooms)
	require.Len(t, groups, 3)

	assert.Equal(t, "Standard", groups[0].TypeName)
	assert.Len(t, groups[0].Rooms, 2)
	assert.Equal(t, "101", groups[0].Rooms[0].RoomNumber)
	assert.Equal(t, "102", groups[0].Rooms[1].RoomNumber)

	assert.Equal(t, "Deluxe", groups[1].TypeName)
	assert.Equal(t, "Suite", groups[2].TypeName)
}

func TestGroupByTypeEmpty(t *testing.T) {
	assert.Empty(t, GroupByType(nil))
}
