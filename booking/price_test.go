package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPrice(t *testing.T) {
	combo := Combination{
		{RoomNumber: "101", Price: 100},
		{RoomNumber: "102", Price: 80},
	}

	assert.Equal(t, 360, TotalPrice(combo, 2))
}

func TestTotalPriceTruncatesFractions(t *testing.T) {
	combo := Combination{
		{RoomNumber: "101", Price: 99.99},
	}

	// Each night charges the truncated price, not the rounded one.
	assert.Equal(t, 297, TotalPrice(combo, 3))
}

func TestTotalPriceLinearInNights(t *testing.T) {
	combo := Combination{
		{RoomNumber: "101", Price: 120},
		{RoomNumber: "102", Price: 45},
	}

	oneNight := TotalPrice(combo, 1)
	for nights := 2; nights <= 5; nights++ {
		assert.Equal(t, oneNight*nights, TotalPrice(combo, nights))
	}
}

func TestTotalPriceEmptyCombination(t *testing.T) {
	assert.Equal(t, 0, TotalPrice(nil, 3))
}
