package cart

import (
	"time"

	"donorlink-web/internal/product"
)

type CartItem struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Product is filled in by GetCartItems only.
	Product *product.Product `json:"product,omitempty"`
}

// Subtotal is the price of the line, or zero when the product is not loaded.
func (c CartItem) Subtotal() float64 {
	if c.Product == nil {
		return 0
	}
	return c.Product.Price * float64(c.Quantity)
}

type Cart struct {
	Items []CartItem
	Total float64
}

type AddToCartParams struct {
	UserID    int
	ProductID string
	Quantity  int
}

type CreateCartItemParams struct {
	UserID    int
	ProductID string
	Quantity  int
}

type DeleteFromCartParams struct {
	UserID int
	ItemID string
}
