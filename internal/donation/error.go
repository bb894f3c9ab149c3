package donation

import "errors"

var (
	ErrUserNotAuthenticated = errors.New("user not authenticated")
	ErrInvalidAmount        = errors.New("donation amount must be greater than zero")
	ErrMessageTooLong       = errors.New("donation message is too long")
	ErrEmptyCart            = errors.New("cart is empty")
)
