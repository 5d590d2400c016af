package auth

import (
	"context"

	"beautysalon/internal/domain"
)

// UserRepository is the storage surface the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, name, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type tokenIssuer interface {
	GenerateToken(userID int64) (string, error)
}
