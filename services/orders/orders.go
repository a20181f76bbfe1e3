package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travelin/internal/pkg/models"
)

// OrderUC defines the interface for order use cases
type OrderUC interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req models.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, requesterRole string) (*models.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, kind models.OrderKind) ([]models.Order, error)
	ConfirmOrder(ctx context.Context, orderID, requesterID uuid.UUID, requesterRole string) (*models.Order, error)
	CancelOrder(ctx context.Context, orderID, requesterID uuid.UUID, requesterRole string) (*models.Order, error)
	CompleteOrder(ctx context.Context, orderID uuid.UUID, requesterRole string) (*models.Order, error)
}

// OrderRepo defines the interface for order persistence
type OrderRepo interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, kind models.OrderKind) ([]models.Order, error)
	// UpdateOrderStatus applies a conditional update keyed on the previous
	// status and fails with ErrStatusConflict when another caller moved the
	// order first.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, from, to models.OrderStatus, updatedAt time.Time) error
}

// OrderGW defines the interface for publishing order events
type OrderGW interface {
	PublishOrderStatusChanged(ctx context.Context, event models.OrderStatusEvent) error
}
