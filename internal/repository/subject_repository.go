package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"deafso/internal/model"
)

// SubjectRepository defines subject read operations plus the upsert used by seeding.
type SubjectRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Subject, error)
	ListByClass(ctx context.Context, standard, division string) ([]model.Subject, error)
	ListByTeacher(ctx context.Context, teacherID uint) ([]model.Subject, error)
	Upsert(ctx context.Context, subject *model.Subject) error
}

type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository creates a GORM-backed subject repository.
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

// FindByID loads a subject with its teacher.
func (r *subjectRepository) FindByID(ctx context.Context, id uint) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.WithContext(ctx).Preload("Teacher").First(&subject, id).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

// ListByClass returns a class's subjects with teachers, ordered by name.
func (r *subjectRepository) ListByClass(ctx context.Context, standard, division string) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).
		Preload("Teacher").
		Where("standard = ? AND division = ?", standard, division).
		Order("subject_name ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *subjectRepository) ListByTeacher(ctx context.Context, teacherID uint) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("standard ASC").
		Order("division ASC").
		Order("subject_name ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// Upsert inserts a subject unless (subject_name, standard, division) already exists.
func (r *subjectRepository) Upsert(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(subject).Error
}
