package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/coursehub/internal/app/models"
)

// MockUserStore is a mock implementation of repositories.UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockCourseStore is a mock implementation of repositories.CourseStore.
type MockCourseStore struct {
	mock.Mock
}

func (m *MockCourseStore) List(ctx context.Context) ([]*models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Course), args.Error(1)
}

func (m *MockCourseStore) ListFirst(ctx context.Context, limit int) ([]*models.Course, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Course), args.Error(1)
}

func (m *MockCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseStore) GetByCourseID(ctx context.Context, courseID string) (*models.Course, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseStore) GetOrCreate(ctx context.Context, course *models.Course) (*models.Course, bool, error) {
	args := m.Called(ctx, course)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Course), args.Bool(1), args.Error(2)
}

func (m *MockCourseStore) Update(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

// MockProfileStore is a mock implementation of repositories.ProfileStore.
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) ListByUserID(ctx context.Context, userID int64) ([]*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Profile), args.Error(1)
}

func (m *MockProfileStore) Create(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileStore) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileStore) GetOrCreateByUserID(ctx context.Context, userID int64) (*models.Profile, bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Profile), args.Bool(1), args.Error(2)
}

func (m *MockProfileStore) UpdateByUserID(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileStore) DeleteByUserID(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockBookmarkStore is a mock implementation of repositories.BookmarkStore.
type MockBookmarkStore struct {
	mock.Mock
}

func (m *MockBookmarkStore) ListByUserID(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bookmark), args.Error(1)
}

func (m *MockBookmarkStore) Create(ctx context.Context, bookmark *models.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockBookmarkStore) GetForUser(ctx context.Context, id, userID int64) (*models.Bookmark, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bookmark), args.Error(1)
}

func (m *MockBookmarkStore) UpdateCourseForUser(ctx context.Context, id, userID, courseID int64) (*models.Bookmark, error) {
	args := m.Called(ctx, id, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bookmark), args.Error(1)
}

func (m *MockBookmarkStore) DeleteForUser(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateAccessToken(user *models.User) (string, int, error) {
	args := m.Called(user)
	return args.String(0), args.Int(1), args.Error(2)
}
