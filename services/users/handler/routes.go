package handler

import (
	"github.com/labstack/echo/v4"

	"travelin/internal/pkg/middleware"
	"travelin/internal/pkg/models"
)

// RegisterRoutes registers the auth and user routes
func (h *UserHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	auth := e.Group("/api/v1/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	me := e.Group("/api/v1/users", middleware.JWTAuthMiddleware(jwtConfig))
	me.GET("/me", h.GetProfile)
	me.PUT("/me", h.UpdateProfile)

	admin := e.Group("/api/v1/admin/users",
		middleware.JWTAuthMiddleware(jwtConfig),
		middleware.AdminOnlyMiddleware())
	admin.GET("", h.ListUsers)
	admin.PUT("/:userID/role", h.UpdateUserRole)
}
