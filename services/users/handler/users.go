package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"travelin/internal/pkg/middleware"
	"travelin/internal/pkg/models"
	"travelin/internal/utils"
	"travelin/services/users"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// Register handles new account creation
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.Register(c.Request().Context(), req)
	if err != nil {
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles credential verification and token issuance
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	auth, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", auth)
}

// GetProfile returns the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile updates the authenticated user's profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, req)
	if err != nil {
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// ListUsers returns all accounts (admin only)
func (h *UserHandler) ListUsers(c echo.Context) error {
	result, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list users")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", result)
}

// UpdateUserRole changes an account's role (admin only)
func (h *UserHandler) UpdateUserRole(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req struct {
		Role models.UserRole `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.UpdateUserRole(c.Request().Context(), userID, req.Role)
	if err != nil {
		return userErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User role updated successfully", user)
}

// userErrorResponse maps domain errors onto HTTP responses
func userErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, users.ErrInvalidUser):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, users.ErrEmailTaken):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, users.ErrUserNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, users.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "Failed to process request")
	}
}
