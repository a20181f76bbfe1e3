package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelin/internal/pkg/models"
	"travelin/services/orders"
)

func setupOrderRepoTest(t *testing.T) (*OrderRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &OrderRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateOrder_Insert(t *testing.T) {
	// Arrange
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now()
	order := &models.Order{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		Kind:           models.OrderKindVehicle,
		Status:         models.OrderStatusPending,
		PassengerCount: 2,
		Subtotal:       70000,
		TotalAmount:    70000,
		Currency:       "IDR",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Act
	err := repo.CreateOrder(context.Background(), order)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrderByID_NotFound(t *testing.T) {
	// Arrange
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	orderID := uuid.New()
	mock.ExpectQuery("^SELECT (.+) FROM orders").
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	// Act
	_, err := repo.GetOrderByID(context.Background(), orderID)

	// Assert
	assert.ErrorIs(t, err, orders.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrdersByUser_FiltersByKind(t *testing.T) {
	// Arrange
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "kind", "status", "passenger_count",
		"subtotal", "discount_amount", "total_amount", "currency",
		"created_at", "updated_at",
	}).AddRow(uuid.New(), userID, "train", "pending", 1, 150000, 0, 150000, "IDR", now, now)

	mock.ExpectQuery("^SELECT (.+) FROM orders").
		WithArgs(userID, models.OrderKindTrain).
		WillReturnRows(rows)

	// Act
	result, err := repo.ListOrdersByUser(context.Background(), userID, models.OrderKindTrain)

	// Assert
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, models.OrderKindTrain, result[0].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatus_Success(t *testing.T) {
	// Arrange
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	orderID := uuid.New()
	updatedAt := time.Now()
	mock.ExpectExec("^UPDATE orders").
		WithArgs(models.OrderStatusConfirmed, updatedAt, orderID, models.OrderStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Act
	err := repo.UpdateOrderStatus(context.Background(), orderID,
		models.OrderStatusPending, models.OrderStatusConfirmed, updatedAt)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatus_ConflictOnZeroRows(t *testing.T) {
	// Arrange
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	orderID := uuid.New()
	updatedAt := time.Now()

	// Another transition already moved the order off pending
	mock.ExpectExec("^UPDATE orders").
		WithArgs(models.OrderStatusCancelled, updatedAt, orderID, models.OrderStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Act
	err := repo.UpdateOrderStatus(context.Background(), orderID,
		models.OrderStatusPending, models.OrderStatusCancelled, updatedAt)

	// Assert
	assert.ErrorIs(t, err, orders.ErrStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
