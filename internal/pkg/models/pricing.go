package models

// RateCard is the static pricing configuration for one vehicle class.
// All monetary amounts are whole Indonesian Rupiah.
type RateCard struct {
	ClassID   string `json:"class_id" db:"class_id"`
	Name      string `json:"name" db:"name"`
	BaseFare  int64  `json:"base_fare" db:"base_fare"`
	PerKm     int64  `json:"per_km" db:"per_km"`
	PerMinute int64  `json:"per_minute" db:"per_minute"`
	Capacity  int    `json:"capacity" db:"capacity"`
}

// PromoCode is a named percentage-discount rule
type PromoCode struct {
	Code            string  `json:"code" db:"code"`
	DiscountPercent float64 `json:"discount_percent" db:"discount_percent"`
	IsActive        bool    `json:"is_active" db:"is_active"`
}

// QuoteRequest carries the trip parameters for a pricing computation
type QuoteRequest struct {
	ClassID     string  `json:"class_id"`
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
	PromoCode   string  `json:"promo_code,omitempty"`
}

// TripQuote is the computed price breakdown for one trip
type TripQuote struct {
	ClassID        string  `json:"class_id"`
	DistanceKm     float64 `json:"distance_km"`
	DurationMin    float64 `json:"duration_min"`
	Subtotal       int64   `json:"subtotal"`
	DiscountAmount int64   `json:"discount_amount"`
	Total          int64   `json:"total"`
	Currency       string  `json:"currency"`
	PromoCode      string  `json:"promo_code,omitempty"`
}

// RouteEstimateRequest carries pickup and dropoff coordinates
type RouteEstimateRequest struct {
	PickupLatitude   float64 `json:"pickup_latitude"`
	PickupLongitude  float64 `json:"pickup_longitude"`
	DropoffLatitude  float64 `json:"dropoff_latitude"`
	DropoffLongitude float64 `json:"dropoff_longitude"`
}

// RouteEstimate is the predicted distance and duration for a trip
type RouteEstimate struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
}
