package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"travelin/internal/pkg/constants"
	"travelin/internal/pkg/database"
	"travelin/internal/pkg/models"
	"travelin/services/admin"
	"travelin/services/pricing"
)

const (
	dashboardCacheTTL = time.Minute
	recentOrdersLimit = 10
)

// adminUC implements the admin.AdminUC interface
type adminUC struct {
	cfg         *models.Config
	statsRepo   admin.StatsRepo
	pricingUC   pricing.PricingUC
	redisClient *database.RedisClient
	logger      *logrus.Logger
}

// NewAdminUC creates a new admin use case
func NewAdminUC(
	cfg *models.Config,
	statsRepo admin.StatsRepo,
	pricingUC pricing.PricingUC,
	redisClient *database.RedisClient,
	logger *logrus.Logger,
) admin.AdminUC {
	return &adminUC{
		cfg:         cfg,
		statsRepo:   statsRepo,
		pricingUC:   pricingUC,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Dashboard assembles the dashboard summary, served from Redis when fresh
func (uc *adminUC) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	if cached, err := uc.redisClient.Get(ctx, constants.KeyDashboard); err == nil {
		var summary models.DashboardSummary
		if err := json.Unmarshal([]byte(cached), &summary); err == nil {
			return &summary, nil
		}
	}

	totalOrders, err := uc.statsRepo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := uc.statsRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.statsRepo.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	statusCounts, err := uc.statsRepo.OrderCountsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.statsRepo.RecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	summary := &models.DashboardSummary{
		Stats: models.OrderStats{
			TotalOrders:  totalOrders,
			TotalUsers:   totalUsers,
			Revenue:      revenue,
			Currency:     uc.cfg.Pricing.Currency,
			StatusCounts: statusCounts,
		},
		RecentOrders: recent,
		GeneratedAt:  time.Now(),
	}

	if data, err := json.Marshal(summary); err == nil {
		if err := uc.redisClient.Set(ctx, constants.KeyDashboard, data, dashboardCacheTTL); err != nil {
			uc.logger.WithError(err).Warn("Failed to cache dashboard summary")
		}
	}

	return summary, nil
}

// PricingSettings returns the active rate cards. The catalog is static
// configuration, so this view is read-only.
func (uc *adminUC) PricingSettings(ctx context.Context) ([]models.RateCard, error) {
	return uc.pricingUC.RateCards(), nil
}
