package handler

import (
	"github.com/labstack/echo/v4"

	"travelin/internal/pkg/middleware"
	"travelin/internal/pkg/models"
)

// RegisterRoutes registers the pricing routes
func (h *PricingHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	g := e.Group("/api/v1/pricing")

	// Rate cards are public so the booking page can render before login
	g.GET("/vehicle-classes", h.ListVehicleClasses)

	authenticated := g.Group("", middleware.JWTAuthMiddleware(jwtConfig))
	authenticated.POST("/quotes", h.GetQuote)
	authenticated.POST("/estimates", h.EstimateRoute)
}
