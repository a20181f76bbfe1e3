package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelin/internal/pkg/database"
	"travelin/internal/pkg/models"
	"travelin/services/admin"
	adminmocks "travelin/services/admin/mocks"
	pricingmocks "travelin/services/pricing/mocks"
)

func newTestAdminUC(ctrl *gomock.Controller) (admin.AdminUC, *adminmocks.MockStatsRepo, *pricingmocks.MockPricingUC) {
	mockStats := adminmocks.NewMockStatsRepo(ctrl)
	mockPricing := pricingmocks.NewMockPricingUC(ctrl)

	cfg := &models.Config{}
	cfg.Pricing.Currency = "IDR"

	// Redis at an unreachable address: the dashboard always recomputes
	redisClient := database.NewRedisClientFromClient(redis.NewClient(&redis.Options{
		Addr: "127.0.0.1:1",
	}))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewAdminUC(cfg, mockStats, mockPricing, redisClient, logger), mockStats, mockPricing
}

func TestDashboard_AssemblesSummary(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockStats, _ := newTestAdminUC(ctrl)

	mockStats.EXPECT().CountOrders(gomock.Any()).Return(int64(42), nil)
	mockStats.EXPECT().CountUsers(gomock.Any()).Return(int64(17), nil)
	mockStats.EXPECT().Revenue(gomock.Any()).Return(int64(3150000), nil)
	mockStats.EXPECT().OrderCountsByStatus(gomock.Any()).Return(map[models.OrderStatus]int64{
		models.OrderStatusPending:   5,
		models.OrderStatusConfirmed: 12,
		models.OrderStatusCompleted: 20,
		models.OrderStatusCancelled: 5,
	}, nil)
	mockStats.EXPECT().RecentOrders(gomock.Any(), recentOrdersLimit).Return([]models.Order{
		{ID: uuid.New(), Status: models.OrderStatusConfirmed},
	}, nil)

	// Act
	summary, err := uc.Dashboard(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(42), summary.Stats.TotalOrders)
	assert.Equal(t, int64(17), summary.Stats.TotalUsers)
	assert.Equal(t, int64(3150000), summary.Stats.Revenue)
	assert.Equal(t, "IDR", summary.Stats.Currency)
	assert.Equal(t, int64(12), summary.Stats.StatusCounts[models.OrderStatusConfirmed])
	assert.Len(t, summary.RecentOrders, 1)
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestPricingSettings_ReturnsRateCards(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, mockPricing := newTestAdminUC(ctrl)

	mockPricing.EXPECT().RateCards().Return([]models.RateCard{
		{ClassID: "mpv-regular", Name: "MPV Regular"},
	})

	// Act
	cards, err := uc.PricingSettings(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "mpv-regular", cards[0].ClassID)
}
