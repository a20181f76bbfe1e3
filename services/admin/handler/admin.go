package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"travelin/internal/utils"
	"travelin/services/admin"
)

// AdminHandler handles HTTP requests for the admin dashboard
type AdminHandler struct {
	adminUC admin.AdminUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUC admin.AdminUC) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
	}
}

// Dashboard returns aggregate order and user figures
func (h *AdminHandler) Dashboard(c echo.Context) error {
	summary, err := h.adminUC.Dashboard(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to load dashboard")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", summary)
}

// PricingSettings returns the active vehicle rate cards
func (h *AdminHandler) PricingSettings(c echo.Context) error {
	cards, err := h.adminUC.PricingSettings(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to load pricing settings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pricing settings retrieved successfully", cards)
}
