package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"job-tracker/internal/model"
)

// MockUserRepository is a testify mock of the user store, shared by
// service and handler tests.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, a model.Application) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, id string) (model.Application, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Application), args.Error(1)
}

func (m *MockApplicationRepository) Update(ctx context.Context, a model.Application) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockApplicationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockApplicationRepository) List(ctx context.Context, q model.ApplicationQuery) ([]model.Application, int, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]model.Application), args.Int(1), args.Error(2)
}
