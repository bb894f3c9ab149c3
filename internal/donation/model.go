package donation

import "time"

type Donation struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Amount    float64   `json:"amount"`
	Message   *string   `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateDonationParams struct {
	UserID  int
	Amount  float64
	Message string
	// FromCart donates the current cart total and empties the cart.
	FromCart bool
}

// Summary aggregates every donation, for the admin dashboard.
type Summary struct {
	Count  int
	Total  float64
	Donors int
}
