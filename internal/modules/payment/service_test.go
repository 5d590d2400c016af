package payment

import (
	"context"
	"testing"

	"beautysalon/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *domain.Card) error {
	args := m.Called(ctx, card)
	if card != nil && args.Error(0) == nil {
		card.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockCardRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Card, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCardRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*domain.Card, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardRepository) DeleteByIDAndUser(ctx context.Context, id, userID int64) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil && args.Error(0) == nil {
		p.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.PaymentWithCard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentWithCard), args.Error(1)
}

func TestMaskPAN(t *testing.T) {
	assert.Equal(t, "4111********1111", maskPAN("4111111111111111"))
	assert.Equal(t, "5105********5100", maskPAN("5105105105105100"))
	assert.Equal(t, "********", maskPAN("1234567"))
}

func TestService_SaveCard_MasksNumber(t *testing.T) {
	mockCards := new(MockCardRepository)

	mockCards.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Card) bool {
		return c.CardNumber == "4111********1111"
	})).Return(nil)

	service := NewService(mockCards, new(MockPaymentRepository))
	card, err := service.SaveCard(context.Background(), 42, SaveCardRequest{
		CardNumber:  "4111111111111111",
		ExpiryMonth: 12,
		ExpiryYear:  2028,
		CardHolder:  "ALICE DOE",
		CVV:         "123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "4111********1111", card.CardNumber)
	mockCards.AssertExpectations(t)
}

func TestService_CreatePayment_Success(t *testing.T) {
	mockCards := new(MockCardRepository)
	mockPayments := new(MockPaymentRepository)

	mockCards.On("GetByIDAndUser", mock.Anything, int64(3), int64(42)).
		Return(&domain.Card{ID: 3, UserID: 42}, nil)
	mockPayments.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockCards, mockPayments)
	p, err := service.CreatePayment(context.Background(), 42, CreatePaymentRequest{
		CardID:      3,
		Amount:      5500,
		ServiceType: "Haircut",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, p.Status)
	_, parseErr := uuid.Parse(p.Reference)
	assert.NoError(t, parseErr)
}

func TestService_CreatePayment_ForeignCard(t *testing.T) {
	mockCards := new(MockCardRepository)
	mockPayments := new(MockPaymentRepository)

	mockCards.On("GetByIDAndUser", mock.Anything, int64(3), int64(42)).
		Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockCards, mockPayments)
	_, err := service.CreatePayment(context.Background(), 42, CreatePaymentRequest{
		CardID:      3,
		Amount:      5500,
		ServiceType: "Haircut",
	})

	assert.ErrorIs(t, err, ErrCardNotFound)
	mockPayments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_DeleteCard_NotFound(t *testing.T) {
	mockCards := new(MockCardRepository)

	mockCards.On("DeleteByIDAndUser", mock.Anything, int64(3), int64(42)).Return(int64(0), nil)

	service := NewService(mockCards, new(MockPaymentRepository))
	err := service.DeleteCard(context.Background(), 3, 42)

	assert.ErrorIs(t, err, ErrCardNotFound)
}
