package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelin/internal/pkg/models"
)

func TestNewRateCardSet_RejectsEmptySet(t *testing.T) {
	_, err := NewRateCardSet(nil)
	assert.Error(t, err)
}

func TestNewRateCardSet_RejectsDuplicateClassID(t *testing.T) {
	_, err := NewRateCardSet([]models.RateCard{
		{ClassID: "mpv-regular", Name: "A", Capacity: 4},
		{ClassID: "mpv-regular", Name: "B", Capacity: 4},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewRateCardSet_RejectsNegativeAmounts(t *testing.T) {
	_, err := NewRateCardSet([]models.RateCard{
		{ClassID: "mpv-regular", Name: "A", BaseFare: -1, Capacity: 4},
	})
	assert.Error(t, err)
}

func TestNewRateCardSet_RejectsNonPositiveCapacity(t *testing.T) {
	_, err := NewRateCardSet([]models.RateCard{
		{ClassID: "mpv-regular", Name: "A", Capacity: 0},
	})
	assert.Error(t, err)
}

func TestRateCardSet_ResolveAndAll(t *testing.T) {
	// Arrange
	set, err := NewRateCardSet(DefaultRateCards())
	require.NoError(t, err)

	// Act / Assert
	card, ok := set.Resolve("mpv-premium")
	require.True(t, ok)
	assert.Equal(t, "MPV Premium", card.Name)
	assert.Equal(t, int64(15000), card.BaseFare)
	assert.Equal(t, int64(7000), card.PerKm)
	assert.Equal(t, int64(700), card.PerMinute)
	assert.Equal(t, 6, card.Capacity)

	_, ok = set.Resolve("suv")
	assert.False(t, ok)

	all := set.All()
	require.Len(t, all, 3)

	// All returns a copy, mutating it must not leak into the set
	all[0].BaseFare = 1
	fresh, _ := set.Resolve("mpv-regular")
	assert.Equal(t, int64(10000), fresh.BaseFare)
}
