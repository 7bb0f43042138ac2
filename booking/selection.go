package booking

// Selection tracks the rooms a guest has toggled while browsing a hotel's
// room list. It lives for one search session and is thrown away once the
// reservation is confirmed or the guest navigates away.
//
// Rooms are matched by RoomNumber. Numbers reused across room types within
// one hotel would collide here; that matches the behavior the product has
// always had.
type Selection struct {
	roomCount  int
	guestCount int
	picked     []RoomOption
}

// NewSelection starts an empty selection capped at roomCount rooms.
func NewSelection(roomCount, guestCount int) *Selection {
	return &Selection{roomCount: roomCount, guestCount: guestCount}
}

// Toggle removes the room when it is already selected. Otherwise it adds the
// room, unless the selection is already full, in which case nothing happens:
// the guest has to deselect a room first rather than have one silently
// swapped out.
func (s *Selection) Toggle(room RoomOption) {
	for i, picked := range s.picked {
		if picked.RoomNumber == room.RoomNumber {
			s.picked = append(s.picked[:i], s.picked[i+1:]...)
			return
		}
	}
	if len(s.picked) >= s.roomCount {
		return
	}
	s.picked = append(s.picked, room)
}

// IsSelected reports whether a room with the same RoomNumber is picked.
func (s *Selection) IsSelected(room RoomOption) bool {
	for _, picked := range s.picked {
		if picked.RoomNumber == room.RoomNumber {
			return true
		}
	}
	return false
}

// IsComplete gates the continue action: exactly roomCount rooms picked and
// enough beds for every guest.
func (s *Selection) IsComplete() bool {
	return len(s.picked) == s.roomCount && totalCapacity(s.picked) >= s.guestCount
}

// Rooms returns the current pick in toggle order.
func (s *Selection) Rooms() Combination {
	out := make(Combination, len(s.picked))
	copy(out, s.picked)
	return out
}
