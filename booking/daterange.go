package booking

import (
	"time"

	"stayhub/errors"
)

// DateRange is a half-open stay interval [Start, End): the guest holds the
// room on Start's night and is gone by End.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange builds a validated range. Start must be strictly before End.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if !start.Before(end) {
		return DateRange{}, errors.ErrInvalidRange
	}
	return DateRange{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open ranges share at least one night.
// Ranges that only touch at a boundary do not overlap, so a check-out and a
// check-in on the same day can share the room.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Nights returns the number of nights between check-in and check-out,
// never less than one. Inputs that slip past validation still get charged
// a single night.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}
