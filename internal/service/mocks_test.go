package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"classdrop/internal/model"
)

// MockPrincipalRepository is a mock implementation of PrincipalRepository.
type MockPrincipalRepository struct {
	mock.Mock
}

func (m *MockPrincipalRepository) Create(ctx context.Context, principal *model.Principal) error {
	args := m.Called(ctx, principal)
	return args.Error(0)
}

func (m *MockPrincipalRepository) FindByName(ctx context.Context, name string, role model.Role) (*model.Principal, error) {
	args := m.Called(ctx, name, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}

func (m *MockPrincipalRepository) Ensure(ctx context.Context, name string, role model.Role) (*model.Principal, error) {
	args := m.Called(ctx, name, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}

func (m *MockPrincipalRepository) Claim(ctx context.Context, name string, role model.Role, hashedPassword string) (*model.Principal, error) {
	args := m.Called(ctx, name, role, hashedPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}

func (m *MockPrincipalRepository) Delete(ctx context.Context, name string, role model.Role) error {
	args := m.Called(ctx, name, role)
	return args.Error(0)
}

// MockAssignmentRepository is a mock implementation of AssignmentRepository.
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) FindByID(ctx context.Context, id uint) (*model.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) List(ctx context.Context) ([]model.Assignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListByStudentName(ctx context.Context, name string) ([]model.Assignment, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) AddComment(ctx context.Context, assignmentID uint, teacherName, text string) (*model.Comment, error) {
	args := m.Called(ctx, assignmentID, teacherName, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}
