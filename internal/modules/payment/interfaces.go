package payment

import (
	"context"

	"beautysalon/internal/domain"
)

type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Card, error)
	GetByIDAndUser(ctx context.Context, id, userID int64) (*domain.Card, error)
	DeleteByIDAndUser(ctx context.Context, id, userID int64) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListByUser(ctx context.Context, userID int64) ([]domain.PaymentWithCard, error)
}
