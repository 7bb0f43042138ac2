package booking

import (
	"testing"
	"time"

	apperrors "stayhub/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(day int) time.Time {
	return time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange(t *testing.T) {
	r, err := NewDateRange(date(10), date(12))
	require.NoError(t, err)
	assert.Equal(t, date(10), r.Start)
	assert.Equal(t, date(12), r.End)

	_, err = NewDateRange(date(12), date(12))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)

	_, err = NewDateRange(date(14), date(12))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{
			name: "disjoint",
			a:    DateRange{Start: date(1), End: date(3)},
			b:    DateRange{Start: date(5), End: date(7)},
			want: false,
		},
		{
			name: "partial overlap",
			a:    DateRange{Start: date(1), End: date(5)},
			b:    DateRange{Start: date(4), End: date(8)},
			want: true,
		},
		{
			name: "contained",
			a:    DateRange{Start: date(1), End: date(10)},
			b:    DateRange{Start: date(3), End: date(5)},
			want: true,
		},
		{
			name: "back to back, checkout equals checkin",
			a:    DateRange{Start: date(10), End: date(12)},
			b:    DateRange{Start: date(12), End: date(14)},
			want: false,
		},
		{
			name: "identical",
			a:    DateRange{Start: date(2), End: date(4)},
			b:    DateRange{Start: date(2), End: date(4)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 2, Nights(date(10), date(12)))
	assert.Equal(t, 1, Nights(date(10), date(11)))

	// Degenerate inputs still charge a single night.
	assert.Equal(t, 1, Nights(date(10), date(10)))
	assert.Equal(t, 1, Nights(date(12), date(10)))
}
