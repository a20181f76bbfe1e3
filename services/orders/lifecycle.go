package orders

import (
	"fmt"
	"time"

	"travelin/internal/pkg/models"
)

// allowedTransitions is the full set of legal status pairs. Orders start
// as pending; completed and cancelled are terminal. Self-transitions are
// not allowed.
var allowedTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:   {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed: {models.OrderStatusCompleted, models.OrderStatusCancelled},
}

// CanTransition reports whether the status pair appears in the
// allowed-transition table
func CanTransition(from, to models.OrderStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status has no outgoing transitions
func IsTerminal(status models.OrderStatus) bool {
	return len(allowedTransitions[status]) == 0
}

// Transition moves an order to the target status and stamps UpdatedAt.
// On an illegal pair the order is left unchanged and the error names both
// the current and the requested state.
func Transition(order *models.Order, target models.OrderStatus, now time.Time) error {
	if !CanTransition(order.Status, target) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, target)
	}

	order.Status = target
	order.UpdatedAt = now
	return nil
}
