package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"travelin/internal/pkg/constants"
	"travelin/internal/pkg/database"
	"travelin/internal/pkg/models"
)

// EstimateCache stores route estimates in Redis
type EstimateCache struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewEstimateCache creates a new route estimate cache
func NewEstimateCache(cfg *models.Config, redisClient *database.RedisClient) *EstimateCache {
	return &EstimateCache{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// GetRouteEstimate retrieves a cached estimate for a geohash pair
func (c *EstimateCache) GetRouteEstimate(ctx context.Context, pickupHash, dropoffHash string) (*models.RouteEstimate, error) {
	key := fmt.Sprintf(constants.KeyRouteEstimate, pickupHash, dropoffHash)
	cached, err := c.redisClient.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var estimate models.RouteEstimate
	if err := json.Unmarshal([]byte(cached), &estimate); err != nil {
		return nil, err
	}

	return &estimate, nil
}

// SetRouteEstimate caches an estimate for a geohash pair
func (c *EstimateCache) SetRouteEstimate(ctx context.Context, pickupHash, dropoffHash string, estimate *models.RouteEstimate) error {
	data, err := json.Marshal(estimate)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(constants.KeyRouteEstimate, pickupHash, dropoffHash)
	ttl := time.Duration(c.cfg.Routing.EstimateCacheTTLSec) * time.Second
	return c.redisClient.Set(ctx, key, data, ttl)
}
