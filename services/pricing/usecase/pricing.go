package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"travelin/internal/pkg/constants"
	"travelin/internal/pkg/models"
	"travelin/internal/utils"
	"travelin/services/pricing"
)

// pricingUC implements the pricing.PricingUC interface
type pricingUC struct {
	cfg       *models.Config
	cards     *pricing.RateCardSet
	promoRepo pricing.PromoRepo
	cache     pricing.EstimateCache
}

// NewPricingUC creates a new pricing use case
func NewPricingUC(
	cfg *models.Config,
	cards *pricing.RateCardSet,
	promoRepo pricing.PromoRepo,
	cache pricing.EstimateCache,
) pricing.PricingUC {
	return &pricingUC{
		cfg:       cfg,
		cards:     cards,
		promoRepo: promoRepo,
		cache:     cache,
	}
}

// Quote computes a deterministic price for a vehicle trip. The same
// inputs always produce the same quote, so receipts can be re-derived
// for audits.
func (uc *pricingUC) Quote(ctx context.Context, req models.QuoteRequest) (*models.TripQuote, error) {
	if req.DistanceKm < 0 || req.DurationMin < 0 {
		return nil, fmt.Errorf("%w: distance and duration must be non-negative", pricing.ErrInvalidInput)
	}

	card, ok := uc.cards.Resolve(req.ClassID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", pricing.ErrUnknownVehicleClass, req.ClassID)
	}

	subtotal := card.BaseFare +
		roundRupiah(req.DistanceKm*float64(card.PerKm)) +
		roundRupiah(req.DurationMin*float64(card.PerMinute))

	quote := &models.TripQuote{
		ClassID:     card.ClassID,
		DistanceKm:  req.DistanceKm,
		DurationMin: req.DurationMin,
		Subtotal:    subtotal,
		Currency:    uc.cfg.Pricing.Currency,
	}

	if req.PromoCode != "" {
		code := strings.ToUpper(strings.TrimSpace(req.PromoCode))
		promo, err := uc.promoRepo.GetPromoByCode(ctx, code)
		if err != nil {
			return nil, err
		}

		discount := roundRupiah(float64(subtotal) * promo.DiscountPercent / 100)
		// A discount never exceeds the subtotal, so the total stays non-negative
		if discount > subtotal {
			discount = subtotal
		}
		quote.DiscountAmount = discount
		quote.PromoCode = promo.Code
	}

	quote.Total = quote.Subtotal - quote.DiscountAmount

	return quote, nil
}

// EstimateRoute predicts trip distance and duration between two points.
// Estimates are cached in Redis keyed by the geohash pair of the endpoints.
func (uc *pricingUC) EstimateRoute(ctx context.Context, req models.RouteEstimateRequest) (*models.RouteEstimate, error) {
	if !validCoordinate(req.PickupLatitude, req.PickupLongitude) ||
		!validCoordinate(req.DropoffLatitude, req.DropoffLongitude) {
		return nil, fmt.Errorf("%w: coordinates out of range", pricing.ErrInvalidInput)
	}

	pickup := utils.GeoPoint{Latitude: req.PickupLatitude, Longitude: req.PickupLongitude}
	dropoff := utils.GeoPoint{Latitude: req.DropoffLatitude, Longitude: req.DropoffLongitude}

	pickupHash := utils.EncodeLocation(pickup, constants.GeohashPrecision)
	dropoffHash := utils.EncodeLocation(dropoff, constants.GeohashPrecision)

	if cached, err := uc.cache.GetRouteEstimate(ctx, pickupHash, dropoffHash); err == nil && cached != nil {
		return cached, nil
	}

	distanceKm := math.Round(utils.CalculateDistance(pickup, dropoff)*100) / 100
	durationMin := math.Round(distanceKm / uc.cfg.Routing.AverageSpeedKmh * 60)

	estimate := &models.RouteEstimate{
		DistanceKm:  distanceKm,
		DurationMin: durationMin,
	}

	// Cache failures only cost a recomputation
	_ = uc.cache.SetRouteEstimate(ctx, pickupHash, dropoffHash, estimate)

	return estimate, nil
}

// RateCards returns the active rate card set
func (uc *pricingUC) RateCards() []models.RateCard {
	return uc.cards.All()
}

// roundRupiah rounds half up to the nearest whole rupiah
func roundRupiah(amount float64) int64 {
	return int64(math.Floor(amount + 0.5))
}

func validCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
