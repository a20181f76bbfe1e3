package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelin/internal/pkg/models"
	"travelin/services/orders"
	"travelin/services/orders/mocks"
	"travelin/services/pricing"
)

func newOrderTestContext(t *testing.T, method, path, body string, userID uuid.UUID, role models.UserRole) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Values normally set by the JWT middleware
	c.Set("user_id", userID)
	c.Set("user_role", string(role))

	return c, rec
}

func TestCreateOrderHandler_Created(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOrderUC(ctrl)
	h := NewOrderHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().
		CreateOrder(gomock.Any(), userID, gomock.Any()).
		Return(&models.Order{ID: uuid.New(), UserID: userID, Status: models.OrderStatusPending}, nil)

	body := `{"kind":"vehicle","pickup_location":"Monas","dropoff_location":"Kota Tua","vehicle_class":"mpv-regular","distance_km":10,"duration_min":20,"passenger_count":2}`
	c, rec := newOrderTestContext(t, http.MethodPost, "/api/v1/orders", body, userID, models.RoleCustomer)

	// Act
	err := h.CreateOrder(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestCreateOrderHandler_UnknownVehicleClass(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOrderUC(ctrl)
	h := NewOrderHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().
		CreateOrder(gomock.Any(), userID, gomock.Any()).
		Return(nil, pricing.ErrUnknownVehicleClass)

	body := `{"kind":"vehicle","pickup_location":"A","dropoff_location":"B","vehicle_class":"suv","passenger_count":1}`
	c, rec := newOrderTestContext(t, http.MethodPost, "/api/v1/orders", body, userID, models.RoleCustomer)

	// Act
	err := h.CreateOrder(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrderHandler_InvalidPromoCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOrderUC(ctrl)
	h := NewOrderHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().
		CreateOrder(gomock.Any(), userID, gomock.Any()).
		Return(nil, pricing.ErrInvalidPromoCode)

	body := `{"kind":"vehicle","pickup_location":"A","dropoff_location":"B","vehicle_class":"mpv-regular","promo_code":"NOPE","passenger_count":1}`
	c, rec := newOrderTestContext(t, http.MethodPost, "/api/v1/orders", body, userID, models.RoleCustomer)

	// Act
	err := h.CreateOrder(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestConfirmOrderHandler_Conflict(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOrderUC(ctrl)
	h := NewOrderHandler(mockUC)
	userID := uuid.New()
	orderID := uuid.New()

	mockUC.EXPECT().
		ConfirmOrder(gomock.Any(), orderID, userID, string(models.RoleCustomer)).
		Return(nil, orders.ErrStatusConflict)

	c, rec := newOrderTestContext(t, http.MethodPost, "/", "", userID, models.RoleCustomer)
	c.SetParamNames("orderID")
	c.SetParamValues(orderID.String())

	// Act
	err := h.ConfirmOrder(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetOrderHandler_Forbidden(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOrderUC(ctrl)
	h := NewOrderHandler(mockUC)
	userID := uuid.New()
	orderID := uuid.New()

	mockUC.EXPECT().
		GetOrder(gomock.Any(), orderID, userID, string(models.RoleCustomer)).
		Return(nil, orders.ErrForbidden)

	c, rec := newOrderTestContext(t, http.MethodGet, "/", "", userID, models.RoleCustomer)
	c.SetParamNames("orderID")
	c.SetParamValues(orderID.String())

	// Act
	err := h.GetOrder(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetOrderHandler_BadOrderID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOrderUC(ctrl)
	h := NewOrderHandler(mockUC)

	c, rec := newOrderTestContext(t, http.MethodGet, "/", "", uuid.New(), models.RoleCustomer)
	c.SetParamNames("orderID")
	c.SetParamValues("not-a-uuid")

	// Act
	err := h.GetOrder(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelOrderHandler_IllegalTransition(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOrderUC(ctrl)
	h := NewOrderHandler(mockUC)
	userID := uuid.New()
	orderID := uuid.New()

	mockUC.EXPECT().
		CancelOrder(gomock.Any(), orderID, userID, string(models.RoleCustomer)).
		Return(nil, orders.ErrIllegalTransition)

	c, rec := newOrderTestContext(t, http.MethodPost, "/", "", userID, models.RoleCustomer)
	c.SetParamNames("orderID")
	c.SetParamValues(orderID.String())

	// Act
	err := h.CancelOrder(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListOrdersHandler_PassesKindFilter(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOrderUC(ctrl)
	h := NewOrderHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().
		ListOrders(gomock.Any(), userID, models.OrderKindFlight).
		Return([]models.Order{}, nil)

	c, rec := newOrderTestContext(t, http.MethodGet, "/api/v1/orders?kind=flight", "", userID, models.RoleCustomer)

	// Act
	err := h.ListOrders(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
