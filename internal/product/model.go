package product

import "time"

const (
	StatusActive  = "active"
	StatusDisable = "disable"
)

// Product is an item donors and volunteers can put in their cart, such as a
// relief kit or a sponsored meal.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    *string   `json:"imageurl,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type GetProductOptions struct {
	ProductID  string
	OnlyActive bool
}

type ListOptions struct {
	Search     string
	OnlyActive bool
	Limit      int
	Page       int
}
