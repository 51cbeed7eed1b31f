package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"internmatch/internal/auth"
	"internmatch/internal/model"
	"internmatch/internal/ranker"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, username string, fields map[string]interface{}) error {
	args := m.Called(ctx, username, fields)
	return args.Error(0)
}

// MockAdminRepository is a mock implementation of AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminRepository) FindByToken(ctx context.Context, token string) (*model.Admin, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

// MockInternshipRepository is a mock implementation of InternshipRepository.
type MockInternshipRepository struct {
	mock.Mock
}

func (m *MockInternshipRepository) Create(ctx context.Context, internship *model.Internship) error {
	args := m.Called(ctx, internship)
	return args.Error(0)
}

func (m *MockInternshipRepository) List(ctx context.Context) ([]model.Internship, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Internship), args.Error(1)
}

func (m *MockInternshipRepository) Search(ctx context.Context, keyword string) ([]model.Internship, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Internship), args.Error(1)
}

func (m *MockInternshipRepository) FindByCategory(ctx context.Context, category string) ([]model.Internship, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Internship), args.Error(1)
}

// MockTrackerRepository is a mock implementation of TrackerRepository.
type MockTrackerRepository struct {
	mock.Mock
}

func (m *MockTrackerRepository) Create(ctx context.Context, tracker *model.Tracker) error {
	args := m.Called(ctx, tracker)
	return args.Error(0)
}

func (m *MockTrackerRepository) FindByID(ctx context.Context, id string) (*model.Tracker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tracker), args.Error(1)
}

func (m *MockTrackerRepository) ListByUsername(ctx context.Context, username string) ([]model.Tracker, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tracker), args.Error(1)
}

func (m *MockTrackerRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

// MockIdentityStore is a mock implementation of IdentityStoreInterface.
type MockIdentityStore struct {
	mock.Mock
}

func (m *MockIdentityStore) Get(ctx context.Context, token string) (*auth.Identity, bool) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*auth.Identity), args.Bool(1)
}

func (m *MockIdentityStore) Put(ctx context.Context, token string, identity *auth.Identity) error {
	args := m.Called(ctx, token, identity)
	return args.Error(0)
}

func (m *MockIdentityStore) Invalidate(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockSnapshotStore is a mock implementation of snapshot.Store.
type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Save(ctx context.Context, username string, profile any) error {
	args := m.Called(ctx, username, profile)
	return args.Error(0)
}

// MockRanker is a mock implementation of ranker.Ranker.
type MockRanker struct {
	mock.Mock
}

func (m *MockRanker) Rank(ctx context.Context, bio string, candidates []ranker.Candidate) ([]ranker.Match, error) {
	args := m.Called(ctx, bio, candidates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ranker.Match), args.Error(1)
}
