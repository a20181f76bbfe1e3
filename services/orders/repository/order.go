package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"travelin/internal/pkg/models"
	"travelin/services/orders"
)

// OrderRepo persists orders in Postgres
type OrderRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(cfg *models.Config, db *sqlx.DB) *OrderRepo {
	return &OrderRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateOrder inserts a new order
func (r *OrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (
			id, user_id, kind, status,
			departure, destination, departure_date,
			pickup_location, dropoff_location, vehicle_class, vehicle_name,
			distance_km, duration_min, passenger_count, payment_method,
			subtotal, discount_amount, total_amount, currency, promo_code,
			notes, created_at, updated_at
		) VALUES (
			:id, :user_id, :kind, :status,
			:departure, :destination, :departure_date,
			:pickup_location, :dropoff_location, :vehicle_class, :vehicle_name,
			:distance_km, :duration_min, :passenger_count, :payment_method,
			:subtotal, :discount_amount, :total_amount, :currency, :promo_code,
			:notes, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// GetOrderByID retrieves an order by ID
func (r *OrderRepo) GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	query := `
		SELECT id, user_id, kind, status,
			departure, destination, departure_date,
			pickup_location, dropoff_location, vehicle_class, vehicle_name,
			distance_km, duration_min, passenger_count, payment_method,
			subtotal, discount_amount, total_amount, currency, promo_code,
			notes, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order models.Order
	err := r.db.GetContext(ctx, &order, query, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orders.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// ListOrdersByUser retrieves a user's orders, newest first, optionally
// filtered by kind
func (r *OrderRepo) ListOrdersByUser(ctx context.Context, userID uuid.UUID, kind models.OrderKind) ([]models.Order, error) {
	query := `
		SELECT id, user_id, kind, status,
			departure, destination, departure_date,
			pickup_location, dropoff_location, vehicle_class, vehicle_name,
			distance_km, duration_min, passenger_count, payment_method,
			subtotal, discount_amount, total_amount, currency, promo_code,
			notes, created_at, updated_at
		FROM orders
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if kind != "" {
		query += " AND kind = $2"
		args = append(args, kind)
	}
	query += " ORDER BY created_at DESC"

	result := []models.Order{}
	if err := r.db.SelectContext(ctx, &result, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return result, nil
}

// UpdateOrderStatus applies a conditional status update. The WHERE clause
// carries the previous status so concurrent transitions on the same order
// cannot both win.
func (r *OrderRepo) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, from, to models.OrderStatus, updatedAt time.Time) error {
	query := `
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, to, updatedAt, orderID, from)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return orders.ErrStatusConflict
	}

	return nil
}
