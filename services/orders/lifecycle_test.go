package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelin/internal/pkg/models"
)

func TestCanTransition_FullPairTable(t *testing.T) {
	statuses := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
	}

	legal := map[models.OrderStatus]map[models.OrderStatus]bool{
		models.OrderStatusPending: {
			models.OrderStatusConfirmed: true,
			models.OrderStatusCancelled: true,
		},
		models.OrderStatusConfirmed: {
			models.OrderStatusCompleted: true,
			models.OrderStatusCancelled: true,
		},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := legal[from][to]
			got := CanTransition(from, to)
			assert.Equal(t, want, got, "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_SelfTransitionsIllegal(t *testing.T) {
	for _, status := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
	} {
		assert.False(t, CanTransition(status, status), "%s -> %s", status, status)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.OrderStatusPending))
	assert.False(t, IsTerminal(models.OrderStatusConfirmed))
	assert.True(t, IsTerminal(models.OrderStatusCompleted))
	assert.True(t, IsTerminal(models.OrderStatusCancelled))
}

func TestTransition_AppliesStatusAndTimestamp(t *testing.T) {
	// Arrange
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	order := &models.Order{
		Status:    models.OrderStatusPending,
		UpdatedAt: created,
	}

	// Act
	err := Transition(order, models.OrderStatusConfirmed, now)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, now, order.UpdatedAt)
}

func TestTransition_IllegalPairLeavesOrderUnchanged(t *testing.T) {
	// Arrange
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	order := &models.Order{
		Status:    models.OrderStatusCompleted,
		UpdatedAt: created,
	}

	// Act
	err := Transition(order, models.OrderStatusCancelled, time.Now())

	// Assert: error names both states, order untouched
	require.ErrorIs(t, err, ErrIllegalTransition)
	assert.Contains(t, err.Error(), "completed -> cancelled")
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	assert.Equal(t, created, order.UpdatedAt)
}
