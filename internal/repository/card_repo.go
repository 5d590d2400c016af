package repository

import (
	"context"
	"time"

	"beautysalon/internal/domain"

	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

type cardModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	CardNumber  string    `gorm:"column:card_number"`
	ExpiryMonth int       `gorm:"column:expiry_month"`
	ExpiryYear  int       `gorm:"column:expiry_year"`
	CardHolder  string    `gorm:"column:card_holder"`
	IsDefault   bool      `gorm:"column:is_default"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (cardModel) TableName() string { return "user_cards" }

func toDomainCard(m cardModel) domain.Card {
	return domain.Card{
		ID:          m.ID,
		UserID:      m.UserID,
		CardNumber:  m.CardNumber,
		ExpiryMonth: m.ExpiryMonth,
		ExpiryYear:  m.ExpiryYear,
		CardHolder:  m.CardHolder,
		IsDefault:   m.IsDefault,
		CreatedAt:   m.CreatedAt,
	}
}

// Create stores the card; when it is flagged default, the previous default
// is cleared in the same transaction so at most one default survives.
func (r *CardRepository) Create(ctx context.Context, card *domain.Card) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if card.IsDefault {
			if err := tx.Model(&cardModel{}).
				Where("user_id = ?", card.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}

		m := cardModel{
			UserID:      card.UserID,
			CardNumber:  card.CardNumber,
			ExpiryMonth: card.ExpiryMonth,
			ExpiryYear:  card.ExpiryYear,
			CardHolder:  card.CardHolder,
			IsDefault:   card.IsDefault,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*card = toDomainCard(m)
		return nil
	})
}

func (r *CardRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Card, error) {
	var rows []cardModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Card, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainCard(m))
	}
	return out, nil
}

func (r *CardRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*domain.Card, error) {
	var m cardModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	d := toDomainCard(m)
	return &d, nil
}

func (r *CardRepository) DeleteByIDAndUser(ctx context.Context, id, userID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&cardModel{})
	return tx.RowsAffected, tx.Error
}
