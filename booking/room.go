package booking

// RoomOption is a read-only snapshot of one bookable room, fetched once per
// search session. Booked holds the ranges already committed for the room;
// they are appended as reservations are confirmed and removed on
// cancellation, never merged.
type RoomOption struct {
	ID          uint        `json:"id"`
	RoomNumber  string      `json:"roomNumber"`
	TypeName    string      `json:"typeName"`
	BedCapacity int         `json:"bedCapacity"`
	Price       float64     `json:"price"`
	Booked      []DateRange `json:"booked,omitempty"`
}

// RoomTypeGroup groups rooms of one category for display.
type RoomTypeGroup struct {
	TypeName string       `json:"typeName"`
	Rooms    []RoomOption `json:"rooms"`
}

// GroupByType buckets rooms by TypeName, keeping both the group order and
// the room order as first seen in the input.
func GroupByType(rooms []RoomOption) []RoomTypeGroup {
	index := make(map[string]int)
	var groups []RoomTypeGroup

	for _, room := range rooms {
		i, ok := index[room.TypeName]
		if !ok {
			i = len(groups)
			index[room.TypeName] = i
			groups = append(groups, RoomTypeGroup{TypeName: room.TypeName})
		}
		groups[i].Rooms = append(groups[i].Rooms, room)
	}
	return groups
}

// totalCapacity sums bed capacity over a set of rooms.
func totalCapacity(rooms []RoomOption) int {
	total := 0
	for _, room := range rooms {
		total += room.BedCapacity
	}
	return total
}
