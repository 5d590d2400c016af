package repository

import (
	"context"
	"time"

	"beautysalon/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// service_id 0 stands for "whole master" reviews so the composite unique
// index behaves the same on postgres and sqlite (NULLs never collide in a
// unique index, which would defeat the one-review-per-pair rule).
type reviewModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_review_target"`
	MasterID  int64     `gorm:"column:master_id;not null;uniqueIndex:idx_review_target"`
	ServiceID int64     `gorm:"column:service_id;not null;default:0;uniqueIndex:idx_review_target"`
	Text      string    `gorm:"column:text"`
	Rating    int       `gorm:"column:rating;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) domain.Review {
	var serviceID *int64
	if m.ServiceID != 0 {
		v := m.ServiceID
		serviceID = &v
	}
	return domain.Review{
		ID:        m.ID,
		UserID:    m.UserID,
		MasterID:  m.MasterID,
		ServiceID: serviceID,
		Text:      m.Text,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toReviewModel(r *domain.Review) reviewModel {
	var serviceID int64
	if r.ServiceID != nil {
		serviceID = *r.ServiceID
	}
	return reviewModel{
		ID:        r.ID,
		UserID:    r.UserID,
		MasterID:  r.MasterID,
		ServiceID: serviceID,
		Text:      r.Text,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// recalcMasterRating rewrites the cached masters.rating from the review
// rows visible to tx. Always called inside the same transaction as the
// review mutation so the cache and its source commit or roll back together.
func recalcMasterRating(tx *gorm.DB, masterID int64) error {
	q := `
UPDATE masters
SET rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE master_id = ?), 0)
WHERE id = ?
`
	return tx.Exec(q, masterID, masterID).Error
}

// CreateWithRating inserts the review and recomputes the master's cached
// rating in one transaction. A duplicate (user, master, service) target
// comes back as ErrDuplicate.
func (r *ReviewRepository) CreateWithRating(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toReviewModel(rv)
		if err := tx.Create(&m).Error; err != nil {
			if isDuplicate(err) {
				return ErrDuplicate
			}
			return err
		}
		if err := recalcMasterRating(tx, m.MasterID); err != nil {
			return err
		}
		*rv = toDomainReview(m)
		return nil
	})
}

// UpdateByOwnerWithRating updates text and rating of the user's own review
// and recomputes the affected master's rating atomically. A missing or
// foreign review is gorm.ErrRecordNotFound either way.
func (r *ReviewRepository) UpdateByOwnerWithRating(ctx context.Context, id, userID int64, text string, rating int) (*domain.Review, error) {
	var out domain.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&reviewModel{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(map[string]any{
				"text":       text,
				"rating":     rating,
				"updated_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var m reviewModel
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}
		if err := recalcMasterRating(tx, m.MasterID); err != nil {
			return err
		}
		out = toDomainReview(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteByOwnerWithRating removes the user's own review and recomputes the
// master's rating (back to 0 when no reviews remain) atomically.
func (r *ReviewRepository) DeleteByOwnerWithRating(ctx context.Context, id, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m reviewModel
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&m).Error; err != nil {
			return err
		}
		if err := tx.Delete(&reviewModel{}, m.ID).Error; err != nil {
			return err
		}
		return recalcMasterRating(tx, m.MasterID)
	})
}

type reviewWithNamesRow struct {
	reviewModel
	UserName             string `gorm:"column:user_name"`
	MasterName           string `gorm:"column:master_name"`
	MasterSpecialization string `gorm:"column:master_specialization"`
}

// ListWithNames returns reviews newest first, enriched with display names.
// masterID 0 means all masters.
func (r *ReviewRepository) ListWithNames(ctx context.Context, masterID int64) ([]domain.ReviewWithNames, error) {
	q := `
SELECT r.*,
       u.name AS user_name,
       m.name AS master_name,
       m.specialization AS master_specialization
FROM reviews r
LEFT JOIN users u ON r.user_id = u.id
LEFT JOIN masters m ON r.master_id = m.id
`
	args := []any{}
	if masterID != 0 {
		q += "WHERE r.master_id = ?\n"
		args = append(args, masterID)
	}
	q += "ORDER BY r.created_at DESC, r.id DESC"

	var rows []reviewWithNamesRow
	if err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.ReviewWithNames, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ReviewWithNames{
			Review:               toDomainReview(row.reviewModel),
			UserName:             row.UserName,
			MasterName:           row.MasterName,
			MasterSpecialization: row.MasterSpecialization,
		})
	}
	return out, nil
}

// GetMasterRating aggregates straight from review rows, bypassing the
// cached masters.rating column. Zero reviews reads as {0, 0}.
func (r *ReviewRepository) GetMasterRating(ctx context.Context, masterID int64) (domain.MasterRating, error) {
	var row struct {
		AverageRating float64 `gorm:"column:average_rating"`
		ReviewCount   int64   `gorm:"column:review_count"`
	}
	q := `
SELECT COALESCE(AVG(rating), 0) AS average_rating,
       COUNT(*) AS review_count
FROM reviews
WHERE master_id = ?
`
	if err := r.db.WithContext(ctx).Raw(q, masterID).Scan(&row).Error; err != nil {
		return domain.MasterRating{}, err
	}
	return domain.MasterRating{
		AverageRating: row.AverageRating,
		ReviewCount:   row.ReviewCount,
	}, nil
}
