package repository

import (
	"context"
	"time"

	"beautysalon/internal/domain"

	"gorm.io/gorm"
)

type MasterRepository struct {
	db *gorm.DB
}

func NewMasterRepository(db *gorm.DB) *MasterRepository {
	return &MasterRepository{db: db}
}

type masterModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name"`
	Specialization string    `gorm:"column:specialization"`
	Rating         float64   `gorm:"column:rating;not null;default:0"`
	PhotoURL       *string   `gorm:"column:photo_url"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (masterModel) TableName() string { return "masters" }

func toDomainMaster(m masterModel) domain.Master {
	var photo string
	if m.PhotoURL != nil {
		photo = *m.PhotoURL
	}
	return domain.Master{
		ID:             m.ID,
		Name:           m.Name,
		Specialization: m.Specialization,
		Rating:         m.Rating,
		PhotoURL:       photo,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *MasterRepository) Create(ctx context.Context, ms *domain.Master) error {
	m := masterModel{
		Name:           ms.Name,
		Specialization: ms.Specialization,
		Rating:         ms.Rating,
		CreatedAt:      ms.CreatedAt,
	}
	if ms.PhotoURL != "" {
		v := ms.PhotoURL
		m.PhotoURL = &v
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*ms = toDomainMaster(m)
	return nil
}

func (r *MasterRepository) GetByID(ctx context.Context, id int64) (*domain.Master, error) {
	var m masterModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	d := toDomainMaster(m)
	return &d, nil
}

func (r *MasterRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&masterModel{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

type masterWithFavoriteRow struct {
	masterModel
	IsFavorite bool `gorm:"column:is_favorite"`
}

// ListWithFavorites returns the whole directory with a per-user
// is_favorite flag computed by a LEFT JOIN against favorites.
func (r *MasterRepository) ListWithFavorites(ctx context.Context, userID int64) ([]domain.MasterWithFavorite, error) {
	var rows []masterWithFavoriteRow
	q := `
SELECT m.*,
       CASE WHEN f.user_id IS NOT NULL THEN TRUE ELSE FALSE END AS is_favorite
FROM masters m
LEFT JOIN favorites f ON m.id = f.master_id AND f.user_id = ?
ORDER BY m.id
`
	if err := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.MasterWithFavorite, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.MasterWithFavorite{
			Master:     toDomainMaster(row.masterModel),
			IsFavorite: row.IsFavorite,
		})
	}
	return out, nil
}
