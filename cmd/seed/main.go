package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"deafso/internal/cache"
	"deafso/internal/config"
	"deafso/internal/db"
	"deafso/internal/model"
	"deafso/internal/repository"
	"deafso/internal/service"
)

const demoPassword = "password123"

// seedSubject is a demo subject owned by the teacher at teacherIndex.
type seedSubject struct {
	name         string
	duration     int
	views        int
	content      string
	teacherIndex int
}

var demoTeachers = []model.Teacher{
	{Fullname: "John Doe", Email: "john.doe@deafso.com", Mobile: "9876543210"},
	{Fullname: "Jane Smith", Email: "jane.smith@deafso.com", Mobile: "9876543211"},
}

var demoSubjects = []seedSubject{
	{name: "Mathematics", duration: 45, views: 150, content: "Advanced mathematics concepts including algebra and geometry", teacherIndex: 0},
	{name: "Science", duration: 40, views: 120, content: "Physics, Chemistry, and Biology fundamentals", teacherIndex: 0},
	{name: "English", duration: 35, views: 100, content: "English literature and grammar", teacherIndex: 1},
	{name: "History", duration: 30, views: 80, content: "World history and important events", teacherIndex: 1},
}

const (
	demoStandard = "10"
	demoDivision = "A"
)

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load .env: %v", err)
	}
	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), cfg.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	ctx := context.Background()
	teacherRepo := repository.NewTeacherRepository(gormDB)
	subjectRepo := repository.NewSubjectRepository(gormDB)

	teachers, created, err := seedTeachers(ctx, teacherRepo, string(hash))
	if err != nil {
		log.Fatalf("Failed to seed teachers: %v", err)
	}
	log.Printf("Teachers ready: %d created, %d already present", created, len(teachers)-created)

	if err := seedSubjects(ctx, subjectRepo, teachers); err != nil {
		log.Fatalf("Failed to seed subjects: %v", err)
	}
	log.Printf("Subjects ready: %d for class %s-%s", len(demoSubjects), demoStandard, demoDivision)

	// cached views predating the seed would hide the new rows until expiry
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "deafso:")
	defer cacheClient.Close()
	keys := []string{service.ClassSubjectsCacheKey(demoStandard, demoDivision)}
	for _, t := range teachers {
		keys = append(keys, service.TeacherCacheKey(t.ID))
	}
	_ = cacheClient.Delete(ctx, keys...)

	log.Println("Seed completed successfully!")
	log.Printf("  - Demo login: %s / %s", demoTeachers[0].Email, demoPassword)
}

// seedTeachers creates the demo teachers that do not exist yet, leaving existing ones untouched.
func seedTeachers(ctx context.Context, repo repository.TeacherRepository, passwordHash string) ([]*model.Teacher, int, error) {
	teachers := make([]*model.Teacher, 0, len(demoTeachers))
	created := 0
	for _, demo := range demoTeachers {
		existing, err := repo.FindByEmail(ctx, demo.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, created, fmt.Errorf("error checking teacher %s: %w", demo.Email, err)
		}
		if existing != nil {
			teachers = append(teachers, existing)
			continue
		}

		teacher := demo
		teacher.PasswordHash = passwordHash
		if err := repo.Create(ctx, &teacher); err != nil {
			return nil, created, fmt.Errorf("error creating teacher %s: %w", demo.Email, err)
		}
		teachers = append(teachers, &teacher)
		created++
	}
	return teachers, created, nil
}

// seedSubjects inserts the demo subjects; ones already present for the class are kept as is.
func seedSubjects(ctx context.Context, repo repository.SubjectRepository, teachers []*model.Teacher) error {
	for _, s := range demoSubjects {
		subject := &model.Subject{
			SubjectName: s.name,
			Standard:    demoStandard,
			Division:    demoDivision,
			Duration:    s.duration,
			Views:       s.views,
			Content:     s.content,
			TeacherID:   teachers[s.teacherIndex].ID,
		}
		if err := repo.Upsert(ctx, subject); err != nil {
			return fmt.Errorf("error seeding subject %s: %w", s.name, err)
		}
	}
	return nil
}
