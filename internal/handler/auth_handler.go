package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "deafso/internal/errors"
	"deafso/internal/metrics"
	"deafso/internal/middleware"
	"deafso/internal/model"
	"deafso/internal/service"
)

const (
	eventSignup = "signup"
	eventLogin  = "login"
	eventLogout = "logout"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	metrics     *metrics.Metrics
}

// NewAuthHandler creates a new auth handler. A nil metrics records nothing.
func NewAuthHandler(authService service.AuthService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{authService: authService, metrics: m}
}

// StudentSignupRequest represents a student registration request.
type StudentSignupRequest struct {
	Fullname   string `json:"fullname" validate:"required,min=2,max=255"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Mobile     string `json:"mobile" validate:"required,len=10,number"`
	Password   string `json:"password" validate:"required,min=6,max=72"`
	Standard   string `json:"standard" validate:"required,oneof=1 2 3 4 5 6 7 8 9 10 11 12"`
	Division   string `json:"division" validate:"required,min=1,max=5"`
	Rollnumber string `json:"rollnumber" validate:"required,min=1,max=20"`
}

// TeacherSignupRequest represents a teacher registration request.
type TeacherSignupRequest struct {
	Fullname string `json:"fullname" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Mobile   string `json:"mobile" validate:"required,len=10,number"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest represents a login request for either principal kind.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// StudentSignup godoc
// @Summary Register a new student
// @Tags auth
// @Accept json
// @Produce json
// @Param request body StudentSignupRequest true "Registration data"
// @Success 201 {object} errors.Response{data=StudentView}
// @Failure 400 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /student/signup [post]
func (h *AuthHandler) StudentSignup(c echo.Context) error {
	var req StudentSignupRequest
	if err := bindAndValidate(c, &req, func() {
		req.Fullname = strings.TrimSpace(req.Fullname)
		req.Email = normalizeEmail(req.Email)
	}); err != nil {
		return err
	}

	student, token, err := h.authService.SignupStudent(c.Request().Context(), service.StudentSignup{
		Fullname:   req.Fullname,
		Email:      req.Email,
		Mobile:     req.Mobile,
		Password:   req.Password,
		Standard:   req.Standard,
		Division:   req.Division,
		Rollnumber: req.Rollnumber,
	})
	h.metrics.AuthEvent(string(model.KindStudent), eventSignup, err)
	if err != nil {
		return failure(c, err)
	}

	return c.JSON(http.StatusCreated, apperrors.Response{
		Success: true,
		Message: "Student registered successfully",
		Data:    newStudentView(student),
		Token:   token,
	})
}

// StudentLogin godoc
// @Summary Login student
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} errors.Response{data=StudentView}
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /student/login [post]
func (h *AuthHandler) StudentLogin(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req, func() { req.Email = normalizeEmail(req.Email) }); err != nil {
		return err
	}

	student, token, err := h.authService.LoginStudent(c.Request().Context(), req.Email, req.Password)
	h.metrics.AuthEvent(string(model.KindStudent), eventLogin, err)
	if err != nil {
		return failure(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.Response{
		Success: true,
		Message: "Student logged in successfully",
		Data:    newStudentView(student),
		Token:   token,
	})
}

// TeacherSignup godoc
// @Summary Register a new teacher
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TeacherSignupRequest true "Registration data"
// @Success 201 {object} errors.Response{data=TeacherView}
// @Failure 400 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /teacher/signup [post]
func (h *AuthHandler) TeacherSignup(c echo.Context) error {
	var req TeacherSignupRequest
	if err := bindAndValidate(c, &req, func() {
		req.Fullname = strings.TrimSpace(req.Fullname)
		req.Email = normalizeEmail(req.Email)
	}); err != nil {
		return err
	}

	teacher, token, err := h.authService.SignupTeacher(c.Request().Context(), service.TeacherSignup{
		Fullname: req.Fullname,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
	})
	h.metrics.AuthEvent(string(model.KindTeacher), eventSignup, err)
	if err != nil {
		return failure(c, err)
	}

	return c.JSON(http.StatusCreated, apperrors.Response{
		Success: true,
		Message: "Teacher registered successfully",
		Data:    newTeacherView(teacher),
		Token:   token,
	})
}

// TeacherLogin godoc
// @Summary Login teacher
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} errors.Response{data=TeacherView}
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /teacher/login [post]
func (h *AuthHandler) TeacherLogin(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req, func() { req.Email = normalizeEmail(req.Email) }); err != nil {
		return err
	}

	teacher, token, err := h.authService.LoginTeacher(c.Request().Context(), req.Email, req.Password)
	h.metrics.AuthEvent(string(model.KindTeacher), eventLogin, err)
	if err != nil {
		return failure(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.Response{
		Success: true,
		Message: "Teacher logged in successfully",
		Data:    newTeacherView(teacher),
		Token:   token,
	})
}

// Logout godoc
// @Summary Logout the current student or teacher
// @Description Revokes the session of the presented bearer token. Mounted at /student/logout and /teacher/logout.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /student/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperrors.NewHTTPError(http.StatusUnauthorized, apperrors.MessageNoToken, "UNAUTHENTICATED")
	}

	err := h.authService.Logout(c.Request().Context(), principal.Kind, middleware.TokenFrom(c))
	h.metrics.AuthEvent(string(principal.Kind), eventLogout, err)
	if err != nil {
		return failure(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.Response{
		Success: true,
		Message: "Logged out successfully",
	})
}
