package payment

type SaveCardRequest struct {
	CardNumber  string `json:"card_number" validate:"required,numeric,min=13,max=19"`
	ExpiryMonth int    `json:"expiry_month" validate:"required,gte=1,lte=12"`
	ExpiryYear  int    `json:"expiry_year" validate:"required,gte=2024"`
	CardHolder  string `json:"card_holder" validate:"required"`
	// CVV is accepted for gateway-shaped clients but never persisted.
	CVV       string `json:"cvv" validate:"required,numeric,min=3,max=4"`
	IsDefault bool   `json:"is_default"`
}

type CreatePaymentRequest struct {
	CardID      int64   `json:"card_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	ServiceType string  `json:"service_type" binding:"required"`
}
