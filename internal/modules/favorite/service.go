package favorite

import (
	"context"
	"errors"

	"beautysalon/internal/domain"
	"beautysalon/internal/repository"
)

// Service maintains the user<->master favorites relation. Repeating an
// Add or Remove leaves the relation in the same terminal state; the
// repeat itself is reported as conflict or not-found.
type Service struct {
	favorites FavoriteRepository
}

func NewService(favorites FavoriteRepository) *Service {
	return &Service{favorites: favorites}
}

func (s *Service) Add(ctx context.Context, userID, masterID int64) (*domain.Favorite, error) {
	if userID <= 0 || masterID <= 0 {
		return nil, ErrValidation
	}
	f, err := s.favorites.Add(ctx, userID, masterID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) Remove(ctx context.Context, userID, masterID int64) error {
	if userID <= 0 || masterID <= 0 {
		return ErrValidation
	}
	affected, err := s.favorites.Remove(ctx, userID, masterID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Master, error) {
	return s.favorites.ListMasters(ctx, userID)
}
