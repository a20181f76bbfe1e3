package handler

import (
	"github.com/labstack/echo/v4"

	"travelin/internal/pkg/middleware"
	"travelin/internal/pkg/models"
)

// RegisterRoutes registers the admin dashboard routes
func (h *AdminHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	g := e.Group("/api/v1/admin",
		middleware.JWTAuthMiddleware(jwtConfig),
		middleware.AdminOnlyMiddleware())

	g.GET("/dashboard", h.Dashboard)
	g.GET("/pricing-settings", h.PricingSettings)
}
