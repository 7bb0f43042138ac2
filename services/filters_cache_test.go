package services

import (
	"testing"
	"time"

	"stayhub/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int              { return &v }
func floatPtr(v float64) *float64    { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func TestMergeFiltersNewValuesWin(t *testing.T) {
	old := &dto.SearchFilters{
		Destination: "Hanoi",
		GuestCount:  intPtr(2),
		Stars:       intPtr(3),
	}
	incoming := &dto.SearchFilters{
		Destination: "Da Nang",
		GuestCount:  intPtr(4),
	}

	merged := MergeFilters(old, incoming)

	assert.Equal(t, "Da Nang", merged.Destination)
	assert.Equal(t, 4, *merged.GuestCount)

	// Untouched fields carry over from the previous turn.
	require.NotNil(t, merged.Stars)
	assert.Equal(t, 3, *merged.Stars)
}

func TestMergeFiltersCarriesDates(t *testing.T) {
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)

	old := &dto.SearchFilters{FromDate: timePtr(from), ToDate: timePtr(to)}
	merged := MergeFilters(old, &dto.SearchFilters{Destination: "Hanoi"})

	require.NotNil(t, merged.FromDate)
	assert.Equal(t, from, *merged.FromDate)
	require.NotNil(t, merged.ToDate)
	assert.Equal(t, to, *merged.ToDate)
}

func TestMergeFiltersDropsConflictingPriceMax(t *testing.T) {
	old := &dto.SearchFilters{PriceMax: floatPtr(100)}
	incoming := &dto.SearchFilters{PriceMin: floatPtr(200)}

	merged := MergeFilters(old, incoming)

	// New minimum above the stale maximum drops the maximum.
	require.NotNil(t, merged.PriceMin)
	assert.Equal(t, 200.0, *merged.PriceMin)
	assert.Nil(t, merged.PriceMax)
}

func TestMergeFiltersDropsConflictingPriceMin(t *testing.T) {
	old := &dto.SearchFilters{PriceMin: floatPtr(300)}
	incoming := &dto.SearchFilters{PriceMax: floatPtr(150)}

	merged := MergeFilters(old, incoming)

	require.NotNil(t, merged.PriceMax)
	assert.Equal(t, 150.0, *merged.PriceMax)
	assert.Nil(t, merged.PriceMin)
}

func TestMergeFiltersCompatiblePriceBounds(t *testing.T) {
	old := &dto.SearchFilters{PriceMin: floatPtr(50)}
	incoming := &dto.SearchFilters{PriceMax: floatPtr(150)}

	merged := MergeFilters(old, incoming)

	require.NotNil(t, merged.PriceMin)
	assert.Equal(t, 50.0, *merged.PriceMin)
	require.NotNil(t, merged.PriceMax)
	assert.Equal(t, 150.0, *merged.PriceMax)
}
