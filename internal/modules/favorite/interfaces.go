package favorite

import (
	"context"

	"beautysalon/internal/domain"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, masterID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, masterID int64) (int64, error)
	ListMasters(ctx context.Context, userID int64) ([]domain.Master, error)
}
