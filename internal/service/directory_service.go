package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"deafso/internal/cache"
	apperrors "deafso/internal/errors"
	"deafso/internal/model"
	"deafso/internal/repository"
)

// DefaultDirectoryCacheTTL bounds how long immutable views stay cached.
const DefaultDirectoryCacheTTL = 5 * time.Minute

// SubjectDetails is a subject together with the size of the class it serves.
type SubjectDetails struct {
	Subject      *model.Subject
	StudentCount int64
}

// DirectoryService exposes read-only profile and class lookups.
type DirectoryService interface {
	GetStudentProfile(ctx context.Context, id uint) (*model.Student, error)
	GetStudentSubjects(ctx context.Context, standard, division string) ([]model.Subject, error)
	GetTeacherProfile(ctx context.Context, id uint) (*model.Teacher, error)
	GetStudentsInClass(ctx context.Context, standard, division string) ([]model.Student, error)
	GetSubjectDetails(ctx context.Context, id uint) (*SubjectDetails, error)
}

type directoryService struct {
	students repository.StudentRepository
	teachers repository.TeacherRepository
	subjects repository.SubjectRepository
	cache    *cache.Client
	ttl      time.Duration
}

// NewDirectoryService builds a DirectoryService. A nil cache disables caching.
func NewDirectoryService(
	students repository.StudentRepository,
	teachers repository.TeacherRepository,
	subjects repository.SubjectRepository,
	cache *cache.Client,
	ttl time.Duration,
) DirectoryService {
	if ttl <= 0 {
		ttl = DefaultDirectoryCacheTTL
	}
	return &directoryService{
		students: students,
		teachers: teachers,
		subjects: subjects,
		cache:    cache,
		ttl:      ttl,
	}
}

// StudentCacheKey is the cache key of a student profile.
func StudentCacheKey(id uint) string {
	return fmt.Sprintf("student:%d", id)
}

// TeacherCacheKey is the cache key of a teacher profile with its subjects.
func TeacherCacheKey(id uint) string {
	return fmt.Sprintf("teacher:%d", id)
}

// ClassSubjectsCacheKey is the cache key of one class's subject list.
func ClassSubjectsCacheKey(standard, division string) string {
	return fmt.Sprintf("subjects:%s:%s", standard, division)
}

func (s *directoryService) GetStudentProfile(ctx context.Context, id uint) (*model.Student, error) {
	var cached model.Student
	if s.cache.GetJSON(ctx, StudentCacheKey(id), &cached) {
		return &cached, nil
	}

	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}

	s.cache.SetJSON(ctx, StudentCacheKey(id), student, s.ttl)
	return student, nil
}

func (s *directoryService) GetStudentSubjects(ctx context.Context, standard, division string) ([]model.Subject, error) {
	key := ClassSubjectsCacheKey(standard, division)
	var cached []model.Subject
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	subjects, err := s.subjects.ListByClass(ctx, standard, division)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	s.cache.SetJSON(ctx, key, subjects, s.ttl)
	return subjects, nil
}

// GetTeacherProfile returns the teacher with Subjects populated.
func (s *directoryService) GetTeacherProfile(ctx context.Context, id uint) (*model.Teacher, error) {
	var cached model.Teacher
	if s.cache.GetJSON(ctx, TeacherCacheKey(id), &cached) {
		return &cached, nil
	}

	teacher, err := s.teachers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}

	subjects, err := s.subjects.ListByTeacher(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list teacher subjects: %w", err)
	}
	teacher.Subjects = subjects

	s.cache.SetJSON(ctx, TeacherCacheKey(id), teacher, s.ttl)
	return teacher, nil
}

// GetStudentsInClass always reads live; signups change it.
func (s *directoryService) GetStudentsInClass(ctx context.Context, standard, division string) ([]model.Student, error) {
	students, err := s.students.ListByClass(ctx, standard, division)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// GetSubjectDetails counts the subject's class at read time.
func (s *directoryService) GetSubjectDetails(ctx context.Context, id uint) (*SubjectDetails, error) {
	subject, err := s.subjects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("find subject: %w", err)
	}

	count, err := s.students.CountByClass(ctx, subject.Standard, subject.Division)
	if err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}

	return &SubjectDetails{Subject: subject, StudentCount: count}, nil
}
