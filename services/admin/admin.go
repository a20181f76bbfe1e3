package admin

import (
	"context"

	"travelin/internal/pkg/models"
)

// AdminUC defines the interface for admin dashboard use cases
type AdminUC interface {
	Dashboard(ctx context.Context) (*models.DashboardSummary, error)
	PricingSettings(ctx context.Context) ([]models.RateCard, error)
}

// StatsRepo defines the interface for dashboard aggregate queries
type StatsRepo interface {
	CountOrders(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	Revenue(ctx context.Context) (int64, error)
	OrderCountsByStatus(ctx context.Context) (map[models.OrderStatus]int64, error)
	RecentOrders(ctx context.Context, limit int) ([]models.Order, error)
}
