package repository

import (
	"context"
	"time"

	"beautysalon/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	CardID      int64     `gorm:"column:card_id;not null"`
	Amount      float64   `gorm:"column:amount"`
	ServiceType string    `gorm:"column:service_type"`
	Status      string    `gorm:"column:status"`
	Reference   string    `gorm:"column:reference;uniqueIndex"`
	PaymentDate time.Time `gorm:"column:payment_date;autoCreateTime"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) domain.Payment {
	return domain.Payment{
		ID:          m.ID,
		UserID:      m.UserID,
		CardID:      m.CardID,
		Amount:      m.Amount,
		ServiceType: m.ServiceType,
		Status:      domain.PaymentStatus(m.Status),
		Reference:   m.Reference,
		PaymentDate: m.PaymentDate,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := paymentModel{
		UserID:      p.UserID,
		CardID:      p.CardID,
		Amount:      p.Amount,
		ServiceType: p.ServiceType,
		Status:      string(p.Status),
		Reference:   p.Reference,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*p = toDomainPayment(m)
	return nil
}

type paymentWithCardRow struct {
	paymentModel
	CardNumber string `gorm:"column:card_number"`
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.PaymentWithCard, error) {
	var rows []paymentWithCardRow
	q := `
SELECT p.*, uc.card_number
FROM payments p
LEFT JOIN user_cards uc ON p.card_id = uc.id
WHERE p.user_id = ?
ORDER BY p.payment_date DESC, p.id DESC
`
	if err := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.PaymentWithCard, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.PaymentWithCard{
			Payment:    toDomainPayment(row.paymentModel),
			CardNumber: row.CardNumber,
		})
	}
	return out, nil
}
