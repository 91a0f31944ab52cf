package model

import "time"

// Teacher is a principal that owns subjects.
type Teacher struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Fullname     string    `json:"fullname" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Mobile       string    `json:"mobile" gorm:"size:20;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Subjects []Subject `json:"subjects,omitempty" gorm:"foreignKey:TeacherID"`
}
