package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "deafso/internal/errors"
	"deafso/internal/service"
)

// DashboardHandler serves profile and class directory lookups.
type DashboardHandler struct {
	directory service.DirectoryService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(directory service.DirectoryService) *DashboardHandler {
	return &DashboardHandler{directory: directory}
}

// GetStudentProfile godoc
// @Summary Get a student's profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param studentID path int true "Student ID"
// @Success 200 {object} errors.Response{data=StudentProfileView}
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /student/profile/{studentID} [get]
func (h *DashboardHandler) GetStudentProfile(c echo.Context) error {
	id, err := pathID(c, "studentID", "Student ID must be a positive integer")
	if err != nil {
		return err
	}

	student, err := h.directory.GetStudentProfile(c.Request().Context(), id)
	if err != nil {
		return failure(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.Response{
		Success: true,
		Message: "Student profile retrieved successfully",
		Data: StudentProfileView{
			StudentView: newStudentView(student),
			CreatedAt:   student.CreatedAt,
			UpdatedAt:   student.UpdatedAt,
		},
	})
}

// GetStudentSubjects godoc
// @Summary List the subjects offered to a class
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param standard path string true "Standard (1-12)"
// @Param division path string true "Division"
// @Success 200 {object} errors.Response{data=[]SubjectView}
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Router /student/subjects/{standard}/{division} [get]
func (h *DashboardHandler) GetStudentSubjects(c echo.Context) error {
	class, err := bindClass(c)
	if err != nil {
		return err
	}

	subjects, err := h.directory.GetStudentSubjects(c.Request().Context(), class.Standard, class.Division)
	if err != nil {
		return failure(c, err)
	}

	if len(subjects) == 0 {
		return c.JSON(http.StatusOK, apperrors.Response{
			Success: true,
			Message: "No subjects found for this standard and division",
			Data:    []SubjectView{},
		})
	}

	views := newSubjectViews(subjects)
	count := len(views)
	return c.JSON(http.StatusOK, apperrors.Response{
		Success: true,
		Message: "Subjects retrieved successfully",
		Data:    views,
		Count:   &count,
	})
}

// GetTeacherProfile godoc
// @Summary Get a teacher's profile and subjects
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param teacherID path int true "Teacher ID"
// @Success 200 {object} errors.Response{data=TeacherProfileView}
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /teacher/profile/{teacherID} [get]
func (h *DashboardHandler) GetTeacherProfile(c echo.Context) error {
	id, err := pathID(c, "teacherID", "Teacher ID must be a positive integer")
	if err != nil {
		return err
	}

	teacher, err := h.directory.GetTeacherProfile(c.Request().Context(), id)
	if err != nil {
		return failure(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.Response{
		Success: true,
		Message: "Teacher profile retrieved successfully",
		Data:    newTeacherProfileView(teacher),
	})
}

// GetStudentsInClass godoc
// @Summary List the students of a class
// @Tags classes
// @Produce json
// @Param standard path string true "Standard (1-12)"
// @Param division path string true "Division"
// @Success 200 {object} errors.Response{data=[]ClassmateView}
// @Failure 400 {object} errors.Response
// @Router /class/{standard}/{division}/students [get]
func (h *DashboardHandler) GetStudentsInClass(c echo.Context) error {
	class, err := bindClass(c)
	if err != nil {
		return err
	}

	students, err := h.directory.GetStudentsInClass(c.Request().Context(), class.Standard, class.Division)
	if err != nil {
		return failure(c, err)
	}

	views := newClassmateViews(students)
	count := len(views)
	return c.JSON(http.StatusOK, apperrors.Response{
		Success: true,
		Message: "Students in class retrieved successfully",
		Data:    views,
		Count:   &count,
	})
}

// GetSubjectDetails godoc
// @Summary Get a subject with its class size
// @Tags subjects
// @Produce json
// @Param subjectId path int true "Subject ID"
// @Success 200 {object} errors.Response{data=SubjectDetailView}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /subject/{subjectId} [get]
func (h *DashboardHandler) GetSubjectDetails(c echo.Context) error {
	id, err := pathID(c, "subjectId", "Subject ID must be a positive integer")
	if err != nil {
		return err
	}

	details, err := h.directory.GetSubjectDetails(c.Request().Context(), id)
	if err != nil {
		return failure(c, err)
	}

	s := details.Subject
	return c.JSON(http.StatusOK, apperrors.Response{
		Success: true,
		Message: "Subject details retrieved successfully",
		Data: SubjectDetailView{
			ID:           s.ID,
			SubjectName:  s.SubjectName,
			Standard:     s.Standard,
			Division:     s.Division,
			Duration:     s.Duration,
			Views:        s.Views,
			Content:      s.Content,
			Teacher:      newSubjectTeacherView(s.Teacher),
			StudentCount: details.StudentCount,
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
		},
	})
}
