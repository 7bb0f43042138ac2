package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	sel := NewSelection(2, 3)
	room1 := RoomOption{RoomNumber: "101", BedCapacity: 2}
	room2 := RoomOption{RoomNumber: "102", BedCapacity: 2}

	sel.Toggle(room1)
	assert.True(t, sel.IsSelected(room1))
	assert.False(t, sel.IsComplete())

	sel.Toggle(room2)
	assert.True(t, sel.IsComplete())

	// Toggling again removes.
	sel.Toggle(room1)
	assert.False(t, sel.IsSelected(room1))
	assert.True(t, sel.IsSelected(room2))
	assert.False(t, sel.IsComplete())
}

func TestSelectionFullIsNoOp(t *testing.T) {
	sel := NewSelection(2, 2)
	sel.Toggle(RoomOption{RoomNumber: "101", BedCapacity: 1})
	sel.Toggle(RoomOption{RoomNumber: "102", BedCapacity: 1})

	extra := RoomOption{RoomNumber: "103", BedCapacity: 4}
	sel.Toggle(extra)

	assert.False(t, sel.IsSelected(extra))
	assert.Len(t, sel.Rooms(), 2)
}

func TestSelectionNeverExceedsRoomCount(t *testing.T) {
	sel := NewSelection(3, 4)
	for i := 0; i < 10; i++ {
		sel.Toggle(RoomOption{RoomNumber: string(rune('A' + i)), BedCapacity: 2})
		assert.LessOrEqual(t, len(sel.Rooms()), 3)
	}
}

func TestSelectionCompleteNeedsCapacity(t *testing.T) {
	sel := NewSelection(2, 6)
	sel.Toggle(RoomOption{RoomNumber: "101", BedCapacity: 2})
	sel.Toggle(RoomOption{RoomNumber: "102", BedCapacity: 2})

	// Two rooms picked but only 4 beds for 6 guests.
	assert.False(t, sel.IsComplete())

	sel.Toggle(RoomOption{RoomNumber: "102", BedCapacity: 2})
	sel.Toggle(RoomOption{RoomNumber: "201", BedCapacity: 4})
	assert.True(t, sel.IsComplete())
}

func TestSelectionMatchesByRoomNumber(t *testing.T) {
	sel := NewSelection(2, 2)
	sel.Toggle(RoomOption{ID: 1, RoomNumber: "101"})

	// Same number, different ID: still treated as the same room.
	sel.Toggle(RoomOption{ID: 99, RoomNumber: "101"})
	assert.Empty(t, sel.Rooms())
}

func TestSelectionRoomsIsACopy(t *testing.T) {
	sel := NewSelection(2, 2)
	sel.Toggle(RoomOption{RoomNumber: "101", BedCapacity: 2})

	rooms := sel.Rooms()
	rooms[0].RoomNumber = "999"

	assert.True(t, sel.IsSelected(RoomOption{RoomNumber: "101"}))
}
