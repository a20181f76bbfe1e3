package pricing

import "errors"

var (
	// ErrInvalidInput indicates malformed trip metrics (negative distance or duration)
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownVehicleClass indicates the class ID does not resolve to a rate card
	ErrUnknownVehicleClass = errors.New("unknown vehicle class")

	// ErrInvalidPromoCode indicates the promo code is not recognized.
	// Unknown codes are rejected, never silently ignored.
	ErrInvalidPromoCode = errors.New("invalid promo code")
)
