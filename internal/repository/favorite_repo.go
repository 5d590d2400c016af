package repository

import (
	"context"
	"time"

	"beautysalon/internal/domain"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

type favoriteModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_user_master"`
	MasterID  int64     `gorm:"column:master_id;not null;uniqueIndex:idx_user_master"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (favoriteModel) TableName() string { return "favorites" }

// Add inserts the pair. The unique index carries the at-most-once rule;
// a repeat insert comes back as ErrDuplicate rather than a second row.
func (r *FavoriteRepository) Add(ctx context.Context, userID, masterID int64) (*domain.Favorite, error) {
	m := favoriteModel{UserID: userID, MasterID: masterID}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &domain.Favorite{
		ID:        m.ID,
		UserID:    m.UserID,
		MasterID:  m.MasterID,
		CreatedAt: m.CreatedAt,
	}, nil
}

// Remove deletes the pair and reports the rows affected; 0 means the pair
// was absent.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, masterID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND master_id = ?", userID, masterID).
		Delete(&favoriteModel{})
	return tx.RowsAffected, tx.Error
}

// ListMasters returns the user's favorited masters.
func (r *FavoriteRepository) ListMasters(ctx context.Context, userID int64) ([]domain.Master, error) {
	var rows []masterModel
	q := `
SELECT m.*
FROM masters m
JOIN favorites f ON m.id = f.master_id
WHERE f.user_id = ?
ORDER BY f.created_at DESC, m.id
`
	if err := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Master, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainMaster(m))
	}
	return out, nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, masterID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&favoriteModel{}).
		Where("user_id = ? AND master_id = ?", userID, masterID).
		Count(&count).Error
	return count > 0, err
}
