package model

import "time"

// Student is a principal enrolled in one class, identified by (standard, division).
type Student struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Fullname     string    `json:"fullname" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Mobile       string    `json:"mobile" gorm:"size:20;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	Standard     string    `json:"standard" gorm:"size:10;not null;index:idx_students_class,priority:1"`
	Division     string    `json:"division" gorm:"size:10;not null;index:idx_students_class,priority:2"`
	Rollnumber   string    `json:"rollnumber" gorm:"uniqueIndex;size:50;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
