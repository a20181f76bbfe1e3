package handler

import (
	"github.com/labstack/echo/v4"

	"travelin/internal/pkg/middleware"
	"travelin/internal/pkg/models"
)

// RegisterRoutes registers the order routes
func (h *OrderHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	g := e.Group("/api/v1/orders", middleware.JWTAuthMiddleware(jwtConfig))

	g.POST("", h.CreateOrder)
	g.GET("", h.ListOrders)
	g.GET("/:orderID", h.GetOrder)
	g.POST("/:orderID/confirm", h.ConfirmOrder)
	g.POST("/:orderID/cancel", h.CancelOrder)

	// Completion is an operator action
	g.POST("/:orderID/complete", h.CompleteOrder, middleware.AdminOnlyMiddleware())
}
