package pricing

import (
	"context"

	"travelin/internal/pkg/models"
)

// PricingUC defines the interface for pricing use cases
type PricingUC interface {
	Quote(ctx context.Context, req models.QuoteRequest) (*models.TripQuote, error)
	EstimateRoute(ctx context.Context, req models.RouteEstimateRequest) (*models.RouteEstimate, error)
	RateCards() []models.RateCard
}

// PromoRepo defines the interface for promo code lookups
type PromoRepo interface {
	GetPromoByCode(ctx context.Context, code string) (*models.PromoCode, error)
}

// EstimateCache defines the interface for route estimate caching
type EstimateCache interface {
	GetRouteEstimate(ctx context.Context, pickupHash, dropoffHash string) (*models.RouteEstimate, error)
	SetRouteEstimate(ctx context.Context, pickupHash, dropoffHash string, estimate *models.RouteEstimate) error
}
