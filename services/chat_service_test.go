package services

import (
	"testing"
	"time"

	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCities = []models.City{
	{Name: "Hanoi"},
	{Name: "Da Nang"},
	{Name: "Nha Trang"},
}

func TestMatchDestination(t *testing.T) {
	assert.Equal(t, "Hanoi", MatchDestination("a hotel in hanoi please", testCities))
	assert.Equal(t, "Da Nang", MatchDestination("da nang", testCities))

	// Typos within the similarity threshold still match.
	assert.Equal(t, "Nha Trang", MatchDestination("nha trnag", testCities))

	assert.Equal(t, "", MatchDestination("", testCities))
	assert.Equal(t, "", MatchDestination("hanoi", nil))
}

func TestExtractSearchFilters(t *testing.T) {
	filters := ExtractSearchFilters("2 rooms for 4 guests in Hanoi from 10/01/2026 to 12/01/2026 under 200", testCities)

	require.NotNil(t, filters.GuestCount)
	assert.Equal(t, 4, *filters.GuestCount)

	require.NotNil(t, filters.RoomCount)
	assert.Equal(t, 2, *filters.RoomCount)

	assert.Equal(t, "Hanoi", filters.Destination)

	require.NotNil(t, filters.FromDate)
	assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), *filters.FromDate)
	require.NotNil(t, filters.ToDate)
	assert.Equal(t, time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), *filters.ToDate)

	require.NotNil(t, filters.PriceMax)
	assert.Equal(t, 200.0, *filters.PriceMax)
}

func TestExtractSearchFiltersGuestUnits(t *testing.T) {
	for _, message := range []string{
		"room for 4 guests",
		"4 people",
		"4 persons please",
		"we are 4 adults",
	} {
		filters := ExtractSearchFilters(message, testCities)
		require.NotNil(t, filters.GuestCount, "message: %q", message)
		assert.Equal(t, 4, *filters.GuestCount, "message: %q", message)
	}
}

func TestExtractSearchFiltersStars(t *testing.T) {
	filters := ExtractSearchFilters("4 star hotel in da nang", testCities)

	require.NotNil(t, filters.Stars)
	assert.Equal(t, 4, *filters.Stars)
	assert.Equal(t, "Da Nang", filters.Destination)
	assert.Nil(t, filters.GuestCount)
	assert.Nil(t, filters.FromDate)
}

func TestExtractSearchFiltersUnmentionedStayNil(t *testing.T) {
	filters := ExtractSearchFilters("somewhere nice", testCities)

	assert.Nil(t, filters.GuestCount)
	assert.Nil(t, filters.RoomCount)
	assert.Nil(t, filters.Stars)
	assert.Nil(t, filters.PriceMax)
	assert.Nil(t, filters.FromDate)
	assert.Nil(t, filters.ToDate)
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("hanoi", "hanoi"))
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
	assert.Less(t, calculateSimilarity("hanoi", "saigon"), destinationMatchThreshold)
}

func TestGetCacheKey(t *testing.T) {
	assert.Equal(t, "42", GetCacheKey(42, "abc"))
	assert.Equal(t, "abc", GetCacheKey(0, "abc"))
	assert.Equal(t, "abc", GetCacheKey(-1, "abc"))
}
