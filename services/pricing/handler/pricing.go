package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"travelin/internal/pkg/models"
	"travelin/internal/utils"
	"travelin/services/pricing"
)

// PricingHandler handles HTTP requests for pricing operations
type PricingHandler struct {
	pricingUC pricing.PricingUC
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingUC pricing.PricingUC) *PricingHandler {
	return &PricingHandler{
		pricingUC: pricingUC,
	}
}

// GetQuote computes a price quote for a vehicle trip
func (h *PricingHandler) GetQuote(c echo.Context) error {
	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	quote, err := h.pricingUC.Quote(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, pricing.ErrUnknownVehicleClass):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, pricing.ErrInvalidPromoCode):
			return utils.UnprocessableEntityResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to compute quote")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quote computed successfully", quote)
}

// EstimateRoute predicts distance and duration between two points
func (h *PricingHandler) EstimateRoute(c echo.Context) error {
	var req models.RouteEstimateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	estimate, err := h.pricingUC.EstimateRoute(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidInput) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to estimate route")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route estimated successfully", estimate)
}

// ListVehicleClasses returns the active rate card set
func (h *PricingHandler) ListVehicleClasses(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle classes retrieved successfully", h.pricingUC.RateCards())
}
