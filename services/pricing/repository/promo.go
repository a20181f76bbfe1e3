package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"travelin/internal/pkg/constants"
	"travelin/internal/pkg/database"
	"travelin/internal/pkg/models"
	"travelin/services/pricing"
)

// PromoRepo looks up promo codes in Postgres with a read-through Redis cache
type PromoRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewPromoRepository creates a new promo code repository
func NewPromoRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *PromoRepo {
	return &PromoRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// GetPromoByCode retrieves an active promo code. The lookup is
// case-insensitive; unknown or inactive codes return ErrInvalidPromoCode.
func (r *PromoRepo) GetPromoByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, pricing.ErrInvalidPromoCode
	}

	cacheKey := fmt.Sprintf(constants.KeyPromoCode, code)
	if cached, err := r.redisClient.Get(ctx, cacheKey); err == nil {
		var promo models.PromoCode
		if err := json.Unmarshal([]byte(cached), &promo); err == nil {
			return &promo, nil
		}
	}

	query := `
		SELECT code, discount_percent, is_active
		FROM promo_codes
		WHERE UPPER(code) = $1
	`

	var promo models.PromoCode
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&promo.Code,
		&promo.DiscountPercent,
		&promo.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pricing.ErrInvalidPromoCode
		}
		return nil, fmt.Errorf("failed to get promo code: %w", err)
	}

	if !promo.IsActive {
		return nil, pricing.ErrInvalidPromoCode
	}

	if data, err := json.Marshal(promo); err == nil {
		ttl := time.Duration(r.cfg.Pricing.PromoCacheTTLSec) * time.Second
		_ = r.redisClient.Set(ctx, cacheKey, data, ttl)
	}

	return &promo, nil
}
