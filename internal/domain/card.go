package domain

import "time"

// Card is a stored payment card. CardNumber holds the masked PAN only
// (first and last four digits); the full number and CVV are never
// persisted.
type Card struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CardNumber  string    `json:"card_number"`
	ExpiryMonth int       `json:"expiry_month"`
	ExpiryYear  int       `json:"expiry_year"`
	CardHolder  string    `json:"card_holder"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
}
