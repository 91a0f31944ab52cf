package repository

import (
	"context"

	"gorm.io/gorm"

	"deafso/internal/model"
)

// StudentRepository defines student persistence operations.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	FindByID(ctx context.Context, id uint) (*model.Student, error)
	FindByEmail(ctx context.Context, email string) (*model.Student, error)
	FindByEmailOrRollnumber(ctx context.Context, email, rollnumber string) (*model.Student, error)
	ListByClass(ctx context.Context, standard, division string) ([]model.Student, error)
	CountByClass(ctx context.Context, standard, division string) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a GORM-backed student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) FindByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByEmailOrRollnumber returns any student holding either unique key.
func (r *studentRepository) FindByEmailOrRollnumber(ctx context.Context, email, rollnumber string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Or("rollnumber = ?", rollnumber).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// ListByClass returns the students of one class ordered by roll number.
func (r *studentRepository) ListByClass(ctx context.Context, standard, division string) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Where("standard = ? AND division = ?", standard, division).
		Order("rollnumber ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) CountByClass(ctx context.Context, standard, division string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).
		Where("standard = ? AND division = ?", standard, division).
		Count(&count).Error
	return count, err
}
