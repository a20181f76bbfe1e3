package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"travelin/internal/pkg/database"
	"travelin/internal/pkg/models"
	"travelin/services/admin"
)

// StatsRepo implements the admin.StatsRepo interface
type StatsRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewStatsRepo creates a new dashboard stats repository
func NewStatsRepo(cfg *models.Config, client *database.PostgresClient) admin.StatsRepo {
	return &StatsRepo{
		cfg: cfg,
		db:  client.GetDB(),
	}
}

// CountOrders returns the total number of orders ever placed
func (r *StatsRepo) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM orders`)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// CountUsers returns the total number of registered accounts
func (r *StatsRepo) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// Revenue sums totals over orders whose payment has settled
func (r *StatsRepo) Revenue(ctx context.Context) (int64, error) {
	var revenue int64
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status IN ($1, $2)`

	err := r.db.GetContext(ctx, &revenue, query,
		models.OrderStatusConfirmed, models.OrderStatusCompleted)
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return revenue, nil
}

// OrderCountsByStatus returns the number of orders in each lifecycle state
func (r *StatsRepo) OrderCountsByStatus(ctx context.Context) (map[models.OrderStatus]int64, error) {
	rows := []struct {
		Status models.OrderStatus `db:"status"`
		Count  int64              `db:"count"`
	}{}

	query := `SELECT status, COUNT(*) AS count FROM orders GROUP BY status`
	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	counts := make(map[models.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// RecentOrders returns the newest orders across all users
func (r *StatsRepo) RecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	result := []models.Order{}
	query := `SELECT * FROM orders ORDER BY created_at DESC LIMIT $1`

	err := r.db.SelectContext(ctx, &result, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}
	return result, nil
}
