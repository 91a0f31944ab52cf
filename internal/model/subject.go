package model

import "time"

// Subject is a course offered to one class by one teacher.
// (SubjectName, Standard, Division) is unique.
type Subject struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SubjectName string    `json:"subjectName" gorm:"size:255;not null;uniqueIndex:idx_subject_class,priority:1"`
	Standard    string    `json:"standard" gorm:"size:10;not null;uniqueIndex:idx_subject_class,priority:2"`
	Division    string    `json:"division" gorm:"size:10;not null;uniqueIndex:idx_subject_class,priority:3"`
	Duration    int       `json:"duration" gorm:"not null;default:0"`
	Views       int       `json:"views" gorm:"not null;default:0"`
	Content     string    `json:"content" gorm:"type:text"`
	TeacherID   uint      `json:"-" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE"`
}
