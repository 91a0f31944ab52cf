package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"deafso/internal/auth"
	"deafso/internal/model"
	"deafso/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignupStudent(ctx context.Context, in service.StudentSignup) (*model.Student, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.Student), args.String(1), args.Error(2)
}

func (m *MockAuthService) SignupTeacher(ctx context.Context, in service.TeacherSignup) (*model.Teacher, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.Teacher), args.String(1), args.Error(2)
}

func (m *MockAuthService) LoginStudent(ctx context.Context, email, password string) (*model.Student, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.Student), args.String(1), args.Error(2)
}

func (m *MockAuthService) LoginTeacher(ctx context.Context, email, password string) (*model.Teacher, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.Teacher), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, kind model.PrincipalKind, token string) error {
	args := m.Called(ctx, kind, token)
	return args.Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, kind model.PrincipalKind, claims *auth.Claims, token string) (*service.Principal, error) {
	args := m.Called(ctx, kind, claims, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Principal), args.Error(1)
}

// MockDirectoryService is a mock implementation of service.DirectoryService.
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) GetStudentProfile(ctx context.Context, id uint) (*model.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockDirectoryService) GetStudentSubjects(ctx context.Context, standard, division string) ([]model.Subject, error) {
	args := m.Called(ctx, standard, division)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subject), args.Error(1)
}

func (m *MockDirectoryService) GetTeacherProfile(ctx context.Context, id uint) (*model.Teacher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Teacher), args.Error(1)
}

func (m *MockDirectoryService) GetStudentsInClass(ctx context.Context, standard, division string) ([]model.Student, error) {
	args := m.Called(ctx, standard, division)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockDirectoryService) GetSubjectDetails(ctx context.Context, id uint) (*service.SubjectDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubjectDetails), args.Error(1)
}
