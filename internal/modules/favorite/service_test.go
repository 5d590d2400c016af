package favorite

import (
	"context"
	"testing"

	"beautysalon/internal/domain"
	"beautysalon/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID, masterID int64) (*domain.Favorite, error) {
	args := m.Called(ctx, userID, masterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, masterID int64) (int64, error) {
	args := m.Called(ctx, userID, masterID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFavoriteRepository) ListMasters(ctx context.Context, userID int64) ([]domain.Master, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Master), args.Error(1)
}

func TestService_Add_Success(t *testing.T) {
	mockFavorites := new(MockFavoriteRepository)

	want := &domain.Favorite{ID: 1, UserID: 42, MasterID: 7}
	mockFavorites.On("Add", mock.Anything, int64(42), int64(7)).Return(want, nil)

	service := NewService(mockFavorites)
	got, err := service.Add(context.Background(), 42, 7)

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_Add_AlreadyFavorite(t *testing.T) {
	mockFavorites := new(MockFavoriteRepository)

	mockFavorites.On("Add", mock.Anything, int64(42), int64(7)).Return(nil, repository.ErrDuplicate)

	service := NewService(mockFavorites)
	_, err := service.Add(context.Background(), 42, 7)

	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_Add_ValidationError(t *testing.T) {
	service := NewService(new(MockFavoriteRepository))

	_, err := service.Add(context.Background(), 42, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Add(context.Background(), 0, 7)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Remove_NotFound(t *testing.T) {
	mockFavorites := new(MockFavoriteRepository)

	mockFavorites.On("Remove", mock.Anything, int64(42), int64(7)).Return(int64(0), nil)

	service := NewService(mockFavorites)
	err := service.Remove(context.Background(), 42, 7)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Remove_Success(t *testing.T) {
	mockFavorites := new(MockFavoriteRepository)

	mockFavorites.On("Remove", mock.Anything, int64(42), int64(7)).Return(int64(1), nil)

	service := NewService(mockFavorites)
	err := service.Remove(context.Background(), 42, 7)

	assert.NoError(t, err)
	mockFavorites.AssertExpectations(t)
}

func TestService_List(t *testing.T) {
	mockFavorites := new(MockFavoriteRepository)

	want := []domain.Master{{ID: 7, Name: "Anna"}}
	mockFavorites.On("ListMasters", mock.Anything, int64(42)).Return(want, nil)

	service := NewService(mockFavorites)
	got, err := service.List(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
