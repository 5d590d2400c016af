package payment

import (
	"context"
	"errors"

	"beautysalon/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	cards    CardRepository
	payments PaymentRepository
}

func NewService(cards CardRepository, payments PaymentRepository) *Service {
	return &Service{cards: cards, payments: payments}
}

// maskPAN keeps the first and last four digits and hides the rest.
func maskPAN(number string) string {
	if len(number) < 8 {
		return "********"
	}
	return number[:4] + "********" + number[len(number)-4:]
}

// SaveCard stores the masked card. The raw PAN and CVV are dropped here
// and never reach the repository.
func (s *Service) SaveCard(ctx context.Context, userID int64, req SaveCardRequest) (*domain.Card, error) {
	if userID <= 0 {
		return nil, ErrValidation
	}

	card := &domain.Card{
		UserID:      userID,
		CardNumber:  maskPAN(req.CardNumber),
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		CardHolder:  req.CardHolder,
		IsDefault:   req.IsDefault,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *Service) ListCards(ctx context.Context, userID int64) ([]domain.Card, error) {
	return s.cards.ListByUser(ctx, userID)
}

func (s *Service) DeleteCard(ctx context.Context, cardID, userID int64) error {
	if cardID <= 0 || userID <= 0 {
		return ErrValidation
	}
	affected, err := s.cards.DeleteByIDAndUser(ctx, cardID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// CreatePayment records a completed charge against a card the caller
// owns. There is no gateway round-trip; the uuid reference stands in for
// the gateway transaction id.
func (s *Service) CreatePayment(ctx context.Context, userID int64, req CreatePaymentRequest) (*domain.Payment, error) {
	if userID <= 0 {
		return nil, ErrValidation
	}

	if _, err := s.cards.GetByIDAndUser(ctx, req.CardID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	p := &domain.Payment{
		UserID:      userID,
		CardID:      req.CardID,
		Amount:      req.Amount,
		ServiceType: req.ServiceType,
		Status:      domain.PaymentCompleted,
		Reference:   uuid.NewString(),
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListPayments(ctx context.Context, userID int64) ([]domain.PaymentWithCard, error) {
	return s.payments.ListByUser(ctx, userID)
}
