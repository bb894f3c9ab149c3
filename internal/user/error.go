package user

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrMissingFields      = errors.New("name, email and password are required")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrNameTooLong        = errors.New("name must be at most 100 characters")
	ErrEmailTooLong       = errors.New("email must be at most 254 characters")
	ErrNoSecret           = errors.New("JWT secret is not set")

	PgUniqueViolation = "23505"
)
