package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "travelin/internal/pkg/jwt"
	"travelin/internal/pkg/models"
	"travelin/services/users"
)

// userUC implements the users.UserUC interface
type userUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
	logger   *logrus.Logger
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, userRepo users.UserRepo, logger *logrus.Logger) users.UserUC {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a new customer account
func (uc *userUC) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", users.ErrInvalidUser)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", users.ErrInvalidUser)
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: full name is required", users.ErrInvalidUser)
	}

	if existing, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, users.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		Role:         models.RoleCustomer,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered")

	return user, nil
}

// Login verifies credentials and issues a JWT
func (uc *userUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, users.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, users.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, users.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, string(user.Role), uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// GetProfile retrieves a user's own profile
func (uc *userUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile updates the mutable profile fields
func (uc *userUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.FullName) != "" {
		user.FullName = strings.TrimSpace(req.FullName)
	}
	if strings.TrimSpace(req.PhoneNumber) != "" {
		user.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// ListUsers returns all accounts for the admin user management view
func (uc *userUC) ListUsers(ctx context.Context) ([]models.User, error) {
	return uc.userRepo.ListUsers(ctx)
}

// UpdateUserRole changes an account's role
func (uc *userUC) UpdateUserRole(ctx context.Context, userID uuid.UUID, role models.UserRole) (*models.User, error) {
	if role != models.RoleAdmin && role != models.RoleCustomer {
		return nil, fmt.Errorf("%w: unknown role %q", users.ErrInvalidUser, role)
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	uc.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    role,
	}).Info("User role updated")

	return user, nil
}
