package booking

// TotalPrice charges each room's truncated nightly price for every night of
// the stay. Truncation of fractional prices is intentional; there is no
// rounding.
func TotalPrice(combination Combination, nights int) int {
	total := 0
	for _, room := range combination {
		total += int(room.Price) * nights
	}
	return total
}
