package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"deafso/internal/model"
)

// MockStudentRepository is a mock implementation of StudentRepository.
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, student *model.Student) error {
	args := m.Called(ctx, student)
	if args.Error(0) == nil {
		student.ID = 1
	}
	return args.Error(0)
}

func (m *MockStudentRepository) FindByID(ctx context.Context, id uint) (*model.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentRepository) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentRepository) FindByEmailOrRollnumber(ctx context.Context, email, rollnumber string) (*model.Student, error) {
	args := m.Called(ctx, email, rollnumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentRepository) ListByClass(ctx context.Context, standard, division string) ([]model.Student, error) {
	args := m.Called(ctx, standard, division)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentRepository) CountByClass(ctx context.Context, standard, division string) (int64, error) {
	args := m.Called(ctx, standard, division)
	return args.Get(0).(int64), args.Error(1)
}

// MockTeacherRepository is a mock implementation of TeacherRepository.
type MockTeacherRepository struct {
	mock.Mock
}

func (m *MockTeacherRepository) Create(ctx context.Context, teacher *model.Teacher) error {
	args := m.Called(ctx, teacher)
	if args.Error(0) == nil {
		teacher.ID = 1
	}
	return args.Error(0)
}

func (m *MockTeacherRepository) FindByID(ctx context.Context, id uint) (*model.Teacher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Teacher), args.Error(1)
}

func (m *MockTeacherRepository) FindByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Teacher), args.Error(1)
}

// MockSubjectRepository is a mock implementation of SubjectRepository.
type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) FindByID(ctx context.Context, id uint) (*model.Subject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

func (m *MockSubjectRepository) ListByClass(ctx context.Context, standard, division string) ([]model.Subject, error) {
	args := m.Called(ctx, standard, division)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subject), args.Error(1)
}

func (m *MockSubjectRepository) ListByTeacher(ctx context.Context, teacherID uint) ([]model.Subject, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subject), args.Error(1)
}

func (m *MockSubjectRepository) Upsert(ctx context.Context, subject *model.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Record(ctx context.Context, principalID uint, kind model.PrincipalKind, token string, expiresAt time.Time) error {
	args := m.Called(ctx, principalID, kind, token, expiresAt)
	return args.Error(0)
}

func (m *MockSessionStore) FindActive(ctx context.Context, kind model.PrincipalKind, token string) (*model.Session, error) {
	args := m.Called(ctx, kind, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionStore) Revoke(ctx context.Context, kind model.PrincipalKind, token string) (int64, error) {
	args := m.Called(ctx, kind, token)
	return args.Get(0).(int64), args.Error(1)
}
