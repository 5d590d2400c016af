package master

import (
	"context"
	"errors"

	"beautysalon/internal/domain"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("master not found")

type MasterRepository interface {
	ListWithFavorites(ctx context.Context, userID int64) ([]domain.MasterWithFavorite, error)
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
}

type Service struct {
	masters MasterRepository
}

func NewService(masters MasterRepository) *Service {
	return &Service{masters: masters}
}

// List returns the full directory with the caller's is_favorite flag.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.MasterWithFavorite, error) {
	return s.masters.ListWithFavorites(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Master, error) {
	m, err := s.masters.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
