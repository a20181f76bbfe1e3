package orders

import "errors"

var (
	// ErrInvalidOrder indicates a malformed booking submission
	ErrInvalidOrder = errors.New("invalid order")

	// ErrOrderNotFound indicates the order does not exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrForbidden indicates the requester may not act on this order
	ErrForbidden = errors.New("not allowed to access this order")

	// ErrIllegalTransition indicates the requested status pair is not in
	// the allowed-transition table
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrStatusConflict indicates a concurrent caller moved the order to a
	// different status first
	ErrStatusConflict = errors.New("order status changed concurrently")
)
