package booking

// Search narrows rooms to the ones free for the stay and picks the first
// combination of roomCount rooms that sleeps guestCount. A nil combination
// with a nil error means the hotel simply cannot host the request.
func Search(rooms []RoomOption, stay DateRange, guestCount, roomCount int) (Combination, error) {
	available, err := FilterAvailable(rooms, stay)
	if err != nil {
		return nil, err
	}
	return FindCombination(available, roomCount, guestCount)
}
