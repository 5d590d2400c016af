package domain

import "time"

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
)

// Payment records a charge against a stored card. There is no gateway
// integration; payments are recorded as completed.
type Payment struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	CardID      int64         `json:"card_id"`
	Amount      float64       `json:"amount"`
	ServiceType string        `json:"service_type"`
	Status      PaymentStatus `json:"status"`
	Reference   string        `json:"reference"`
	PaymentDate time.Time     `json:"payment_date"`
}

// PaymentWithCard joins the masked card number for history listings.
type PaymentWithCard struct {
	Payment
	CardNumber string `json:"card_number"`
}
