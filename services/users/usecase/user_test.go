package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"travelin/internal/pkg/models"
	"travelin/services/users"
	"travelin/services/users/mocks"
)

func newTestUserUC(ctrl *gomock.Controller) (users.UserUC, *mocks.MockUserRepo) {
	mockRepo := mocks.NewMockUserRepo(ctrl)

	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60
	cfg.JWT.Issuer = "travelin-test"

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewUserUC(cfg, mockRepo, logger), mockRepo
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo := newTestUserUC(ctrl)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "budi@example.com").
		Return(nil, users.ErrUserNotFound)
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, "budi@example.com", user.Email)
			assert.Equal(t, models.RoleCustomer, user.Role)
			assert.True(t, user.IsActive)
			assert.NoError(t, bcrypt.CompareHashAndPassword(
				[]byte(user.PasswordHash), []byte("rahasia-123")))
			return nil
		})

	// Act: email arrives with mixed case and whitespace
	user, err := uc.Register(context.Background(), models.RegisterRequest{
		Email:    " Budi@Example.com ",
		Password: "rahasia-123",
		FullName: "Budi Santoso",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestRegister_EmailTaken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo := newTestUserUC(ctrl)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "budi@example.com").
		Return(&models.User{ID: uuid.New(), Email: "budi@example.com"}, nil)

	// Act
	_, err := uc.Register(context.Background(), models.RegisterRequest{
		Email:    "budi@example.com",
		Password: "rahasia-123",
		FullName: "Budi Santoso",
	})

	// Assert
	assert.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestRegister_WeakPassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUserUC(ctrl)

	// Act
	_, err := uc.Register(context.Background(), models.RegisterRequest{
		Email:    "budi@example.com",
		Password: "short",
		FullName: "Budi Santoso",
	})

	// Assert
	assert.ErrorIs(t, err, users.ErrInvalidUser)
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo := newTestUserUC(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia-123"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "budi@example.com").
		Return(&models.User{
			ID:           uuid.New(),
			Email:        "budi@example.com",
			Role:         models.RoleCustomer,
			PasswordHash: string(hash),
			IsActive:     true,
		}, nil)

	// Act
	auth, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "budi@example.com",
		Password: "rahasia-123",
	})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Greater(t, auth.ExpiresAt, int64(0))
	assert.Equal(t, "budi@example.com", auth.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo := newTestUserUC(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia-123"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "budi@example.com").
		Return(&models.User{PasswordHash: string(hash), IsActive: true}, nil)

	// Act
	_, err = uc.Login(context.Background(), models.LoginRequest{
		Email:    "budi@example.com",
		Password: "salah-password",
	})

	// Assert
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo := newTestUserUC(ctrl)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "budi@example.com").
		Return(&models.User{IsActive: false}, nil)

	// Act
	_, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "budi@example.com",
		Password: "rahasia-123",
	})

	// Assert
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo := newTestUserUC(ctrl)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, users.ErrUserNotFound)

	// Act
	_, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever-123",
	})

	// Assert: unknown accounts look identical to bad passwords
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo := newTestUserUC(ctrl)
	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{
			ID:          userID,
			FullName:    "Budi Santoso",
			PhoneNumber: "08123456789",
		}, nil)
	mockRepo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		Return(nil)

	// Act: only the phone number changes
	user, err := uc.UpdateProfile(context.Background(), userID, models.UpdateProfileRequest{
		PhoneNumber: "08199998888",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", user.FullName)
	assert.Equal(t, "08199998888", user.PhoneNumber)
}

func TestUpdateUserRole_UnknownRole(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUserUC(ctrl)

	// Act
	_, err := uc.UpdateUserRole(context.Background(), uuid.New(), models.UserRole("superuser"))

	// Assert
	assert.ErrorIs(t, err, users.ErrInvalidUser)
}

func TestUpdateUserRole_Promote(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo := newTestUserUC(ctrl)
	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Role: models.RoleCustomer}, nil)
	mockRepo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		Return(nil)

	// Act
	user, err := uc.UpdateUserRole(context.Background(), userID, models.RoleAdmin)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}
