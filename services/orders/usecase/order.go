package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"travelin/internal/pkg/models"
	"travelin/services/orders"
	"travelin/services/pricing"
)

// orderUC implements the orders.OrderUC interface
type orderUC struct {
	cfg       *models.Config
	orderRepo orders.OrderRepo
	orderGW   orders.OrderGW
	pricingUC pricing.PricingUC
	logger    *logrus.Logger
}

// NewOrderUC creates a new order use case
func NewOrderUC(
	cfg *models.Config,
	orderRepo orders.OrderRepo,
	orderGW orders.OrderGW,
	pricingUC pricing.PricingUC,
	logger *logrus.Logger,
) orders.OrderUC {
	return &orderUC{
		cfg:       cfg,
		orderRepo: orderRepo,
		orderGW:   orderGW,
		pricingUC: pricingUC,
		logger:    logger,
	}
}

// CreateOrder validates a booking submission, prices it, and persists it
// in the pending state. Payment confirmation is a separate transition.
func (uc *orderUC) CreateOrder(ctx context.Context, userID uuid.UUID, req models.CreateOrderRequest) (*models.Order, error) {
	if req.PassengerCount < 1 {
		return nil, fmt.Errorf("%w: passenger count must be at least 1", orders.ErrInvalidOrder)
	}

	now := time.Now()
	order := &models.Order{
		ID:             uuid.New(),
		UserID:         userID,
		Kind:           req.Kind,
		Status:         models.OrderStatusPending,
		PassengerCount: req.PassengerCount,
		PaymentMethod:  req.PaymentMethod,
		Notes:          req.Notes,
		Currency:       uc.cfg.Pricing.Currency,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	switch req.Kind {
	case models.OrderKindVehicle:
		if err := uc.priceVehicleOrder(ctx, order, req); err != nil {
			return nil, err
		}
	case models.OrderKindFlight, models.OrderKindTrain:
		if err := fillRouteOrder(order, req); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown order kind %q", orders.ErrInvalidOrder, req.Kind)
	}

	if err := uc.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	uc.logger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  userID,
		"kind":     order.Kind,
		"total":    order.TotalAmount,
	}).Info("Order created")

	return order, nil
}

// priceVehicleOrder quotes the trip through the pricing engine and copies
// the priced summary onto the order
func (uc *orderUC) priceVehicleOrder(ctx context.Context, order *models.Order, req models.CreateOrderRequest) error {
	if req.PickupLocation == "" || req.DropoffLocation == "" {
		return fmt.Errorf("%w: pickup and dropoff locations are required", orders.ErrInvalidOrder)
	}

	quote, err := uc.pricingUC.Quote(ctx, models.QuoteRequest{
		ClassID:     req.VehicleClass,
		DistanceKm:  req.DistanceKm,
		DurationMin: req.DurationMin,
		PromoCode:   req.PromoCode,
	})
	if err != nil {
		return err
	}

	for _, card := range uc.pricingUC.RateCards() {
		if card.ClassID != quote.ClassID {
			continue
		}
		if req.PassengerCount > card.Capacity {
			return fmt.Errorf("%w: %s seats at most %d passengers", orders.ErrInvalidOrder, card.Name, card.Capacity)
		}
		order.VehicleName = card.Name
	}

	order.PickupLocation = req.PickupLocation
	order.DropoffLocation = req.DropoffLocation
	order.VehicleClass = quote.ClassID
	order.DistanceKm = quote.DistanceKm
	order.DurationMin = quote.DurationMin
	order.Subtotal = quote.Subtotal
	order.DiscountAmount = quote.DiscountAmount
	order.TotalAmount = quote.Total
	order.PromoCode = quote.PromoCode

	return nil
}

// fillRouteOrder validates a flight or train booking. These products are
// priced upstream by the carrier inventory, so the amount arrives with
// the request.
func fillRouteOrder(order *models.Order, req models.CreateOrderRequest) error {
	if req.Departure == "" || req.Destination == "" {
		return fmt.Errorf("%w: departure and destination are required", orders.ErrInvalidOrder)
	}
	if req.DepartureDate == nil {
		return fmt.Errorf("%w: departure date is required", orders.ErrInvalidOrder)
	}
	if req.Amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative", orders.ErrInvalidOrder)
	}

	order.Departure = req.Departure
	order.Destination = req.Destination
	order.DepartureDate = req.DepartureDate
	order.Subtotal = req.Amount
	order.TotalAmount = req.Amount

	return nil
}

// GetOrder retrieves an order, restricted to its owner or an admin
func (uc *orderUC) GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, requesterRole string) (*models.Order, error) {
	order, err := uc.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != requesterID && requesterRole != string(models.RoleAdmin) {
		return nil, orders.ErrForbidden
	}

	return order, nil
}

// ListOrders retrieves a user's own orders, optionally filtered by kind
func (uc *orderUC) ListOrders(ctx context.Context, userID uuid.UUID, kind models.OrderKind) ([]models.Order, error) {
	return uc.orderRepo.ListOrdersByUser(ctx, userID, kind)
}

// ConfirmOrder marks a pending order as confirmed (payment settled)
func (uc *orderUC) ConfirmOrder(ctx context.Context, orderID, requesterID uuid.UUID, requesterRole string) (*models.Order, error) {
	return uc.transition(ctx, orderID, models.OrderStatusConfirmed, requesterID, requesterRole)
}

// CancelOrder cancels a pending or confirmed order
func (uc *orderUC) CancelOrder(ctx context.Context, orderID, requesterID uuid.UUID, requesterRole string) (*models.Order, error) {
	return uc.transition(ctx, orderID, models.OrderStatusCancelled, requesterID, requesterRole)
}

// CompleteOrder marks a confirmed order as completed. Operator action only.
func (uc *orderUC) CompleteOrder(ctx context.Context, orderID uuid.UUID, requesterRole string) (*models.Order, error) {
	if requesterRole != string(models.RoleAdmin) {
		return nil, orders.ErrForbidden
	}
	return uc.transition(ctx, orderID, models.OrderStatusCompleted, uuid.Nil, requesterRole)
}

// transition validates and applies a lifecycle transition, then publishes
// the status change event
func (uc *orderUC) transition(ctx context.Context, orderID uuid.UUID, target models.OrderStatus, requesterID uuid.UUID, requesterRole string) (*models.Order, error) {
	order, err := uc.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != requesterID && requesterRole != string(models.RoleAdmin) {
		return nil, orders.ErrForbidden
	}

	oldStatus := order.Status
	if err := orders.Transition(order, target, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.UpdateOrderStatus(ctx, order.ID, oldStatus, order.Status, order.UpdatedAt); err != nil {
		return nil, err
	}

	event := models.OrderStatusEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		Kind:        order.Kind,
		OldStatus:   oldStatus,
		NewStatus:   order.Status,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		Timestamp:   time.Now().UTC(),
	}
	if err := uc.orderGW.PublishOrderStatusChanged(ctx, event); err != nil {
		// The transition is already durable; downstream consumers catch up
		// from the database if the event is lost
		uc.logger.WithError(err).WithField("order_id", order.ID).Error("Failed to publish order status event")
	}

	return order, nil
}
