package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"travelin/internal/pkg/middleware"
	"travelin/internal/pkg/models"
	"travelin/internal/utils"
	"travelin/services/orders"
	"travelin/services/pricing"
)

// OrderHandler handles HTTP requests for order operations
type OrderHandler struct {
	orderUC orders.OrderUC
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUC orders.OrderUC) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
	}
}

// CreateOrder handles booking submission
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), userID, req)
	if err != nil {
		return orderErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Order created successfully", order)
}

// ListOrders returns the authenticated user's orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	kind := models.OrderKind(c.QueryParam("kind"))

	result, err := h.orderUC.ListOrders(c.Request().Context(), userID, kind)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list orders")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", result)
}

// GetOrder returns a single order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID, userID, middleware.RoleFromContext(c))
	if err != nil {
		return orderErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Order retrieved successfully", order)
}

// ConfirmOrder marks an order as confirmed after payment settles
func (h *OrderHandler) ConfirmOrder(c echo.Context) error {
	return h.transition(c, h.orderUC.ConfirmOrder, "Order confirmed successfully")
}

// CancelOrder cancels an order
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	return h.transition(c, h.orderUC.CancelOrder, "Order cancelled successfully")
}

// CompleteOrder marks a confirmed order as completed (admin only)
func (h *OrderHandler) CompleteOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	order, err := h.orderUC.CompleteOrder(c.Request().Context(), orderID, middleware.RoleFromContext(c))
	if err != nil {
		return orderErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Order completed successfully", order)
}

// transitionFunc is the shape shared by owner-driven lifecycle transitions
type transitionFunc func(ctx context.Context, orderID, requesterID uuid.UUID, requesterRole string) (*models.Order, error)

func (h *OrderHandler) transition(c echo.Context, fn transitionFunc, message string) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	order, err := fn(c.Request().Context(), orderID, userID, middleware.RoleFromContext(c))
	if err != nil {
		return orderErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, message, order)
}

// orderErrorResponse maps domain errors onto HTTP responses
func orderErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, orders.ErrInvalidOrder):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, pricing.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, pricing.ErrUnknownVehicleClass):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, pricing.ErrInvalidPromoCode):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case errors.Is(err, orders.ErrOrderNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, orders.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, orders.ErrIllegalTransition):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, orders.ErrStatusConflict):
		return utils.ConflictResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "Failed to process order")
	}
}
