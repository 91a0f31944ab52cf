package repository

import (
	"context"

	"gorm.io/gorm"

	"deafso/internal/model"
)

// TeacherRepository defines teacher persistence operations.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	FindByID(ctx context.Context, id uint) (*model.Teacher, error)
	FindByEmail(ctx context.Context, email string) (*model.Teacher, error)
}

type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository creates a GORM-backed teacher repository.
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepository) FindByID(ctx context.Context, id uint) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.WithContext(ctx).First(&teacher, id).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepository) FindByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&teacher).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}
