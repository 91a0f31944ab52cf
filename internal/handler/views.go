package handler

import (
	"time"

	"deafso/internal/model"
)

// StudentView is a student's public fields as returned by signup and login.
type StudentView struct {
	ID         uint   `json:"id"`
	Fullname   string `json:"fullname"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	Standard   string `json:"standard"`
	Division   string `json:"division"`
	Rollnumber string `json:"rollnumber"`
}

// TeacherView is a teacher's public fields as returned by signup and login.
type TeacherView struct {
	ID       uint   `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
}

// StudentProfileView is a student profile with timestamps.
type StudentProfileView struct {
	StudentView
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClassmateView is one entry of a class roster.
type ClassmateView struct {
	ID         uint      `json:"id"`
	Fullname   string    `json:"fullname"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile"`
	Rollnumber string    `json:"rollnumber"`
	CreatedAt  time.Time `json:"created_at"`
}

// SubjectTeacherView is the teacher summary embedded in subject views.
type SubjectTeacherView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SubjectView is a subject offered to a class.
type SubjectView struct {
	ID          uint                `json:"id"`
	SubjectName string              `json:"subjectName"`
	Duration    int                 `json:"duration"`
	Views       int                 `json:"views"`
	Content     string              `json:"content"`
	Teacher     *SubjectTeacherView `json:"teacher"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// SubjectDetailView is a subject with its class and live student count.
type SubjectDetailView struct {
	ID           uint                `json:"id"`
	SubjectName  string              `json:"subjectName"`
	Standard     string              `json:"standard"`
	Division     string              `json:"division"`
	Duration     int                 `json:"duration"`
	Views        int                 `json:"views"`
	Content      string              `json:"content"`
	Teacher      *SubjectTeacherView `json:"teacher"`
	StudentCount int64               `json:"student_count"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// TaughtSubjectView is a subject as listed on its teacher's profile.
type TaughtSubjectView struct {
	ID          uint      `json:"id"`
	SubjectName string    `json:"subjectName"`
	Standard    string    `json:"standard"`
	Division    string    `json:"division"`
	Duration    int       `json:"duration"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}

// TeacherProfileView is a teacher profile with the subjects they teach.
type TeacherProfileView struct {
	TeacherView
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	Subjects  []TaughtSubjectView `json:"subjects"`
}

func newStudentView(s *model.Student) StudentView {
	return StudentView{
		ID:         s.ID,
		Fullname:   s.Fullname,
		Email:      s.Email,
		Mobile:     s.Mobile,
		Standard:   s.Standard,
		Division:   s.Division,
		Rollnumber: s.Rollnumber,
	}
}

func newTeacherView(t *model.Teacher) TeacherView {
	return TeacherView{
		ID:       t.ID,
		Fullname: t.Fullname,
		Email:    t.Email,
		Mobile:   t.Mobile,
	}
}

func newSubjectTeacherView(t *model.Teacher) *SubjectTeacherView {
	if t == nil {
		return nil
	}
	return &SubjectTeacherView{ID: t.ID, Name: t.Fullname, Email: t.Email}
}

func newSubjectViews(subjects []model.Subject) []SubjectView {
	views := make([]SubjectView, 0, len(subjects))
	for _, s := range subjects {
		views = append(views, SubjectView{
			ID:          s.ID,
			SubjectName: s.SubjectName,
			Duration:    s.Duration,
			Views:       s.Views,
			Content:     s.Content,
			Teacher:     newSubjectTeacherView(s.Teacher),
			CreatedAt:   s.CreatedAt,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return views
}

func newClassmateViews(students []model.Student) []ClassmateView {
	views := make([]ClassmateView, 0, len(students))
	for _, s := range students {
		views = append(views, ClassmateView{
			ID:         s.ID,
			Fullname:   s.Fullname,
			Email:      s.Email,
			Mobile:     s.Mobile,
			Rollnumber: s.Rollnumber,
			CreatedAt:  s.CreatedAt,
		})
	}
	return views
}

func newTeacherProfileView(t *model.Teacher) TeacherProfileView {
	subjects := make([]TaughtSubjectView, 0, len(t.Subjects))
	for _, s := range t.Subjects {
		subjects = append(subjects, TaughtSubjectView{
			ID:          s.ID,
			SubjectName: s.SubjectName,
			Standard:    s.Standard,
			Division:    s.Division,
			Duration:    s.Duration,
			Views:       s.Views,
			CreatedAt:   s.CreatedAt,
		})
	}
	return TeacherProfileView{
		TeacherView: newTeacherView(t),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Subjects:    subjects,
	}
}
