package review

import (
	"context"

	"beautysalon/internal/domain"
)

// ReviewRepository is the storage surface of the aggregator. Every
// mutating call recomputes the master's cached rating in the same
// transaction as the review row change.
type ReviewRepository interface {
	CreateWithRating(ctx context.Context, rv *domain.Review) error
	UpdateByOwnerWithRating(ctx context.Context, id, userID int64, text string, rating int) (*domain.Review, error)
	DeleteByOwnerWithRating(ctx context.Context, id, userID int64) error
	ListWithNames(ctx context.Context, masterID int64) ([]domain.ReviewWithNames, error)
	GetMasterRating(ctx context.Context, masterID int64) (domain.MasterRating, error)
}

type MasterReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type CatalogServiceReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
