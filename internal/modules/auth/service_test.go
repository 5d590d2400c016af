package auth

import (
	"context"
	"testing"

	"beautysalon/internal/domain"
	"beautysalon/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id int64, name, email string) (*domain.User, error) {
	args := m.Called(ctx, id, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_Register_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockJWT.On("GenerateToken", int64(999)).Return("signed-token", nil)

	service := NewService(mockUsers, mockJWT)
	u, token, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "  Alice@Example.COM ",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "signed-token", token)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
}

func TestService_Register_EmailTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	service := NewService(mockUsers, mockJWT)
	_, _, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "taken@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	mockJWT.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	stored := &domain.User{ID: 7, Email: "bob@example.com", PasswordHash: mustHash(t, "hunter22")}
	mockUsers.On("GetByEmail", mock.Anything, "bob@example.com").Return(stored, nil)
	mockJWT.On("GenerateToken", int64(7)).Return("signed-token", nil)

	service := NewService(mockUsers, mockJWT)
	u, token, err := service.Login(context.Background(), LoginRequest{
		Email:    "bob@example.com",
		Password: "hunter22",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, "signed-token", token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	stored := &domain.User{ID: 7, Email: "bob@example.com", PasswordHash: mustHash(t, "hunter22")}
	mockUsers.On("GetByEmail", mock.Anything, "bob@example.com").Return(stored, nil)

	service := NewService(mockUsers, mockJWT)
	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "bob@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	mockJWT.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)

	mockUsers.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockUsers, new(MockTokenIssuer))
	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Unknown email and wrong password are indistinguishable.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_UpdateProfile_EmailTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)

	mockUsers.On("UpdateProfile", mock.Anything, int64(7), "Bob", "taken@example.com").
		Return(nil, repository.ErrDuplicate)

	service := NewService(mockUsers, new(MockTokenIssuer))
	_, err := service.UpdateProfile(context.Background(), 7, UpdateProfileRequest{
		Name:  "Bob",
		Email: "taken@example.com",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_ChangePassword_WrongCurrent(t *testing.T) {
	mockUsers := new(MockUserRepository)

	stored := &domain.User{ID: 7, PasswordHash: mustHash(t, "correct")}
	mockUsers.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)

	service := NewService(mockUsers, new(MockTokenIssuer))
	err := service.ChangePassword(context.Background(), 7, ChangePasswordRequest{
		CurrentPassword: "incorrect",
		NewPassword:     "newpass123",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
	mockUsers.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ChangePassword_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)

	stored := &domain.User{ID: 7, PasswordHash: mustHash(t, "correct")}
	mockUsers.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
	mockUsers.On("UpdatePassword", mock.Anything, int64(7), mock.Anything).Return(nil)

	service := NewService(mockUsers, new(MockTokenIssuer))
	err := service.ChangePassword(context.Background(), 7, ChangePasswordRequest{
		CurrentPassword: "correct",
		NewPassword:     "newpass123",
	})

	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)
}
