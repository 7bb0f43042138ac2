package booking

import "stayhub/errors"

// Combination is a fixed-size pick of rooms whose combined bed capacity
// covers the requested guest count.
type Combination []RoomOption

// FindCombination picks roomCount rooms out of rooms (already filtered for
// availability) whose bed capacities sum to at least guestCount.
//
// For a single room it returns the first room in input order with enough
// beds. For more rooms it enumerates combinations in lexicographic index
// order (take the current room first, then skip it) and returns the first
// satisfying one. The pick is deterministic but deliberately not
// cheapest-first. Returns nil when nothing fits, including when there are
// fewer rooms than requested; that is a normal outcome, not an error.
func FindCombination(rooms []RoomOption, roomCount, guestCount int) (Combination, error) {
	if roomCount <= 0 || guestCount <= 0 {
		return nil, errors.ErrInvalidRequest
	}

	if roomCount == 1 {
		for _, room := range rooms {
			if room.BedCapacity >= guestCount {
				return Combination{room}, nil
			}
		}
		return nil, nil
	}

	if len(rooms) < roomCount {
		return nil, nil
	}
	return pickRooms(rooms, nil, roomCount, guestCount), nil
}

// pickRooms walks the remaining rooms, either taking the first one into the
// partial pick or skipping it. Taking before skipping makes lower input
// indices win, which fixes the enumeration order.
func pickRooms(remaining []RoomOption, picked Combination, roomCount, guestCount int) Combination {
	if len(picked) == roomCount {
		if totalCapacity(picked) >= guestCount {
			return picked
		}
		return nil
	}
	if len(remaining) < roomCount-len(picked) {
		return nil
	}

	withFirst := append(append(Combination{}, picked...), remaining[0])
	if found := pickRooms(remaining[1:], withFirst, roomCount, guestCount); found != nil {
		return found
	}
	return pickRooms(remaining[1:], picked, roomCount, guestCount)
}
