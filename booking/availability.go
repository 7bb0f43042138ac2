package booking

import "stayhub/errors"

// FilterAvailable returns the rooms whose booked ranges leave the whole stay
// free, preserving input order. A room with no booked ranges is always
// available. The stay must be a valid range (Start < End).
func FilterAvailable(rooms []RoomOption, stay DateRange) ([]RoomOption, error) {
	if !stay.Start.Before(stay.End) {
		return nil, errors.ErrInvalidRange
	}

	available := make([]RoomOption, 0, len(rooms))
	for _, room := range rooms {
		if isFree(room, stay) {
			available = append(available, room)
		}
	}
	return available, nil
}

func isFree(room RoomOption, stay DateRange) bool {
	for _, booked := range room.Booked {
		if stay.Overlaps(booked) {
			return false
		}
	}
	return true
}
