package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	gommonlog "github.com/labstack/gommon/log"

	"deafso/docs"
	"deafso/internal/auth"
	"deafso/internal/cache"
	"deafso/internal/config"
	"deafso/internal/db"
	"deafso/internal/handler"
	"deafso/internal/metrics"
	"deafso/internal/middleware"
	"deafso/internal/repository"
	"deafso/internal/router"
	"deafso/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title DeafSo Backend API
// @version 1.0
// @description Student and teacher authentication with class and subject directory lookups.
// @host localhost:3000
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	if cfg.IsProduction() {
		e.Logger.SetLevel(gommonlog.INFO)
	} else {
		e.Logger.SetLevel(gommonlog.DEBUG)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if cfg.AutoMigrate {
		if err := db.Migrate(gormDB); err != nil {
			log.Fatalf("%v", err)
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "deafso:")
	defer cacheClient.Close()

	// Initialize repositories
	studentRepo := repository.NewStudentRepository(gormDB)
	teacherRepo := repository.NewTeacherRepository(gormDB)
	subjectRepo := repository.NewSubjectRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	sessionStore := auth.NewSessionStore(gormDB)

	// Initialize services
	authService := service.NewAuthService(studentRepo, teacherRepo, jwtService, sessionStore, cfg.BcryptCost)
	directoryService := service.NewDirectoryService(studentRepo, teacherRepo, subjectRepo, cacheClient, cfg.CacheTTL)

	m := metrics.New()

	// Register routes
	router.Register(
		e,
		cfg,
		middleware.NewGuard(jwtService, authService),
		m,
		handler.NewAuthHandler(authService, m),
		handler.NewDashboardHandler(directoryService),
		handler.NewHealthHandler(db.Pinger{DB: gormDB}, cacheClient),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	log.Printf("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)
	log.Printf("Health check: http://localhost:%s/health", cfg.ServerPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
