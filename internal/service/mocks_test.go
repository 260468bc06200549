package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"promptpix/internal/domain"
	"promptpix/internal/repository"
)

type mockCreationRepository struct {
	mock.Mock
}

func (m *mockCreationRepository) Create(ctx context.Context, creation *domain.Creation) error {
	args := m.Called(ctx, creation)
	return args.Error(0)
}

func (m *mockCreationRepository) GetByID(ctx context.Context, id int64) (*domain.Creation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Creation), args.Error(1)
}

func (m *mockCreationRepository) GetByUser(ctx context.Context, userID int64, params domain.PaginationParams) ([]domain.Creation, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).([]domain.Creation), args.Error(1)
}

func (m *mockCreationRepository) GetFeed(ctx context.Context, sort domain.FeedSort, params domain.PaginationParams) ([]domain.Creation, error) {
	args := m.Called(ctx, sort, params)
	return args.Get(0).([]domain.Creation), args.Error(1)
}

func (m *mockCreationRepository) GetPicked(ctx context.Context, limit int) ([]domain.Creation, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Creation), args.Error(1)
}

func (m *mockCreationRepository) ToggleAdminPick(ctx context.Context, id int64) (*domain.Creation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Creation), args.Error(1)
}

func (m *mockCreationRepository) DeleteByID(ctx context.Context, id int64) (*domain.Creation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Creation), args.Error(1)
}

func (m *mockCreationRepository) AddLike(ctx context.Context, userID, creationID int64) (bool, error) {
	args := m.Called(ctx, userID, creationID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCreationRepository) RemoveLike(ctx context.Context, userID, creationID int64) (bool, error) {
	args := m.Called(ctx, userID, creationID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCreationRepository) IsLiked(ctx context.Context, userID, creationID int64) (bool, error) {
	args := m.Called(ctx, userID, creationID)
	return args.Bool(0), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(ctx context.Context, session *repository.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*repository.Session, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Session), args.Error(1)
}

func (m *mockSessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSessionRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	args := m.Called(ctx, name, r)
	return args.String(0), args.Error(1)
}

func (m *mockStore) Remove(ctx context.Context, mediaURL string) error {
	args := m.Called(ctx, mediaURL)
	return args.Error(0)
}

func (m *mockStore) Exists(ctx context.Context, mediaURL string) (bool, error) {
	args := m.Called(ctx, mediaURL)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) Owns(mediaURL string) bool {
	args := m.Called(mediaURL)
	return args.Bool(0)
}
