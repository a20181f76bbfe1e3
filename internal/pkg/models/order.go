package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderKind distinguishes the booking product
type OrderKind string

const (
	OrderKindFlight  OrderKind = "flight"
	OrderKindTrain   OrderKind = "train"
	OrderKindVehicle OrderKind = "vehicle"
)

// OrderStatus represents the current lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order represents a booking record. Cancellation is a terminal state,
// orders are never deleted.
type Order struct {
	ID     uuid.UUID   `json:"id" db:"id"`
	UserID uuid.UUID   `json:"user_id" db:"user_id"`
	Kind   OrderKind   `json:"kind" db:"kind"`
	Status OrderStatus `json:"status" db:"status"`

	// Route fields for flight and train bookings
	Departure     string     `json:"departure,omitempty" db:"departure"`
	Destination   string     `json:"destination,omitempty" db:"destination"`
	DepartureDate *time.Time `json:"departure_date,omitempty" db:"departure_date"`

	// Trip fields for vehicle bookings
	PickupLocation  string  `json:"pickup_location,omitempty" db:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location,omitempty" db:"dropoff_location"`
	VehicleClass    string  `json:"vehicle_class,omitempty" db:"vehicle_class"`
	VehicleName     string  `json:"vehicle_name,omitempty" db:"vehicle_name"`
	DistanceKm      float64 `json:"distance_km,omitempty" db:"distance_km"`
	DurationMin     float64 `json:"duration_min,omitempty" db:"duration_min"`

	PassengerCount int    `json:"passenger_count" db:"passenger_count"`
	PaymentMethod  string `json:"payment_method,omitempty" db:"payment_method"`

	// Priced summary captured at creation time
	Subtotal       int64  `json:"subtotal" db:"subtotal"`
	DiscountAmount int64  `json:"discount_amount" db:"discount_amount"`
	TotalAmount    int64  `json:"total_amount" db:"total_amount"`
	Currency       string `json:"currency" db:"currency"`
	PromoCode      string `json:"promo_code,omitempty" db:"promo_code"`

	Notes     string    `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateOrderRequest is the payload for booking submission
type CreateOrderRequest struct {
	Kind OrderKind `json:"kind"`

	// Flight and train bookings
	Departure     string     `json:"departure,omitempty"`
	Destination   string     `json:"destination,omitempty"`
	DepartureDate *time.Time `json:"departure_date,omitempty"`
	Amount        int64      `json:"amount,omitempty"`

	// Vehicle bookings
	PickupLocation  string  `json:"pickup_location,omitempty"`
	DropoffLocation string  `json:"dropoff_location,omitempty"`
	VehicleClass    string  `json:"vehicle_class,omitempty"`
	DistanceKm      float64 `json:"distance_km,omitempty"`
	DurationMin     float64 `json:"duration_min,omitempty"`
	PromoCode       string  `json:"promo_code,omitempty"`

	PassengerCount int    `json:"passenger_count"`
	PaymentMethod  string `json:"payment_method,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// OrderStatusEvent is published whenever an order changes state
type OrderStatusEvent struct {
	OrderID     uuid.UUID   `json:"order_id"`
	UserID      uuid.UUID   `json:"user_id"`
	Kind        OrderKind   `json:"kind"`
	OldStatus   OrderStatus `json:"old_status"`
	NewStatus   OrderStatus `json:"new_status"`
	TotalAmount int64       `json:"total_amount"`
	Currency    string      `json:"currency"`
	Timestamp   time.Time   `json:"timestamp"`
}

// OrderStats aggregates order figures for the admin dashboard
type OrderStats struct {
	TotalOrders  int64                 `json:"total_orders"`
	TotalUsers   int64                 `json:"total_users"`
	Revenue      int64                 `json:"revenue"`
	Currency     string                `json:"currency"`
	StatusCounts map[OrderStatus]int64 `json:"status_counts"`
}

// DashboardSummary is the admin dashboard payload
type DashboardSummary struct {
	Stats        OrderStats `json:"stats"`
	RecentOrders []Order    `json:"recent_orders"`
	GeneratedAt  time.Time  `json:"generated_at"`
}
