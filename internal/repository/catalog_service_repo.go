package repository

import (
	"context"
	"time"

	"beautysalon/internal/domain"

	"gorm.io/gorm"
)

type CatalogServiceRepository struct {
	db *gorm.DB
}

func NewCatalogServiceRepository(db *gorm.DB) *CatalogServiceRepository {
	return &CatalogServiceRepository{db: db}
}

type catalogServiceModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Name            string    `gorm:"column:name"`
	Price           float64   `gorm:"column:price"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (catalogServiceModel) TableName() string { return "services" }

func toDomainCatalogService(m catalogServiceModel) domain.CatalogService {
	return domain.CatalogService{
		ID:              m.ID,
		Name:            m.Name,
		Price:           m.Price,
		DurationMinutes: m.DurationMinutes,
		CreatedAt:       m.CreatedAt,
	}
}

func (r *CatalogServiceRepository) Create(ctx context.Context, s *domain.CatalogService) error {
	m := catalogServiceModel{
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*s = toDomainCatalogService(m)
	return nil
}

func (r *CatalogServiceRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&catalogServiceModel{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *CatalogServiceRepository) List(ctx context.Context) ([]domain.CatalogService, error) {
	var rows []catalogServiceModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.CatalogService, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainCatalogService(m))
	}
	return out, nil
}
