package cart

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	// -- Validation & Input --
	ErrInvalidQuantity        = errors.New("invalid cart quantity")
	ErrInvalidRemoveCartInput = errors.New("invalid remove cart input")

	// -- Resource State --
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)
