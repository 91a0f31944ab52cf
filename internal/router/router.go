package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"deafso/internal/config"
	"deafso/internal/handler"
	"deafso/internal/metrics"
	authmw "deafso/internal/middleware"
	"deafso/internal/model"
)

const bodyLimit = "1M"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	guard *authmw.Guard,
	m *metrics.Metrics,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	healthHandler *handler.HealthHandler,
) {
	e.HTTPErrorHandler = HTTPErrorHandler(!cfg.IsProduction())
	e.Validator = NewValidator()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		HSTSMaxAge:         15552000,
		ReferrerPolicy:     "no-referrer",
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(m.Middleware())

	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", m.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	student := guard.Require(model.KindStudent)
	teacher := guard.Require(model.KindTeacher)

	// Public routes
	api.POST("/student/signup", authHandler.StudentSignup)
	api.POST("/student/login", authHandler.StudentLogin)
	api.POST("/teacher/signup", authHandler.TeacherSignup)
	api.POST("/teacher/login", authHandler.TeacherLogin)

	// Open directory lookups, readable by either kind without a token
	api.GET("/class/:standard/:division/students", dashboardHandler.GetStudentsInClass)
	api.GET("/subject/:subjectId", dashboardHandler.GetSubjectDetails)

	// Student routes
	api.POST("/student/logout", authHandler.Logout, student)
	api.GET("/student/profile/:studentID", dashboardHandler.GetStudentProfile, student)
	api.GET("/student/subjects/:standard/:division", dashboardHandler.GetStudentSubjects, student)

	// Teacher routes
	api.POST("/teacher/logout", authHandler.Logout, teacher)
	api.GET("/teacher/profile/:teacherID", dashboardHandler.GetTeacherProfile, teacher)
}
