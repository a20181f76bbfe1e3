package users

import "errors"

var (
	// ErrInvalidUser indicates a malformed registration or update payload
	ErrInvalidUser = errors.New("invalid user data")

	// ErrEmailTaken indicates the email is already registered
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound indicates the user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates a failed login attempt
	ErrInvalidCredentials = errors.New("invalid email or password")
)
