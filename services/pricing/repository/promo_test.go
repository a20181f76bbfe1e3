package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelin/internal/pkg/database"
	"travelin/internal/pkg/models"
	"travelin/services/pricing"
)

func setupPromoRepoTest(t *testing.T) (*PromoRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	// Redis at an unreachable address: every cache read misses, cache
	// writes are best effort and ignored
	redisClient := database.NewRedisClientFromClient(redis.NewClient(&redis.Options{
		Addr: "127.0.0.1:1",
	}))

	repo := &PromoRepo{
		cfg:         &models.Config{},
		db:          sqlxDB,
		redisClient: redisClient,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestGetPromoByCode_Active(t *testing.T) {
	// Arrange
	repo, mock, cleanup := setupPromoRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"code", "discount_percent", "is_active"}).
		AddRow("TRAVEL10", 10.0, true)
	mock.ExpectQuery("^SELECT (.+) FROM promo_codes").
		WithArgs("TRAVEL10").
		WillReturnRows(rows)

	// Act: lowercase input is normalized before lookup
	promo, err := repo.GetPromoByCode(context.Background(), "travel10")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "TRAVEL10", promo.Code)
	assert.Equal(t, 10.0, promo.DiscountPercent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPromoByCode_Unknown(t *testing.T) {
	// Arrange
	repo, mock, cleanup := setupPromoRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM promo_codes").
		WithArgs("NOPE").
		WillReturnRows(sqlmock.NewRows([]string{"code", "discount_percent", "is_active"}))

	// Act
	_, err := repo.GetPromoByCode(context.Background(), "NOPE")

	// Assert
	assert.ErrorIs(t, err, pricing.ErrInvalidPromoCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPromoByCode_Inactive(t *testing.T) {
	// Arrange
	repo, mock, cleanup := setupPromoRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"code", "discount_percent", "is_active"}).
		AddRow("OLDPROMO", 25.0, false)
	mock.ExpectQuery("^SELECT (.+) FROM promo_codes").
		WithArgs("OLDPROMO").
		WillReturnRows(rows)

	// Act
	_, err := repo.GetPromoByCode(context.Background(), "OLDPROMO")

	// Assert
	assert.ErrorIs(t, err, pricing.ErrInvalidPromoCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPromoByCode_Empty(t *testing.T) {
	// Arrange
	repo, _, cleanup := setupPromoRepoTest(t)
	defer cleanup()

	// Act
	_, err := repo.GetPromoByCode(context.Background(), "   ")

	// Assert: no query is issued for an empty code
	assert.ErrorIs(t, err, pricing.ErrInvalidPromoCode)
}
