package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"deafso/internal/auth"
	apperrors "deafso/internal/errors"
	"deafso/internal/model"
	"deafso/internal/repository"
)

// DefaultBcryptCost is the password hashing work factor.
const DefaultBcryptCost = 12

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

const (
	msgPasswordTooLong  = "Password must be at most 72 bytes long"
	msgDuplicateStudent = "Student with this email or roll number already exists"
	msgDuplicateTeacher = "Teacher with this email already exists"
)

// StudentSignup carries validated student registration input.
type StudentSignup struct {
	Fullname   string
	Email      string
	Mobile     string
	Password   string
	Standard   string
	Division   string
	Rollnumber string
}

// TeacherSignup carries validated teacher registration input.
type TeacherSignup struct {
	Fullname string
	Email    string
	Mobile   string
	Password string
}

// Principal is the authenticated caller resolved from a bearer token.
// Exactly one of Student and Teacher is set, matching Kind.
type Principal struct {
	Kind    model.PrincipalKind
	ID      uint
	Student *model.Student
	Teacher *model.Teacher
}

// AuthService handles authentication operations.
type AuthService interface {
	SignupStudent(ctx context.Context, in StudentSignup) (*model.Student, string, error)
	SignupTeacher(ctx context.Context, in TeacherSignup) (*model.Teacher, string, error)
	LoginStudent(ctx context.Context, email, password string) (*model.Student, string, error)
	LoginTeacher(ctx context.Context, email, password string) (*model.Teacher, string, error)
	Logout(ctx context.Context, kind model.PrincipalKind, token string) error
	Authenticate(ctx context.Context, kind model.PrincipalKind, claims *auth.Claims, token string) (*Principal, error)
}

type authService struct {
	students   repository.StudentRepository
	teachers   repository.TeacherRepository
	jwtService *auth.JWTService
	sessions   auth.SessionStoreInterface
	bcryptCost int
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	students repository.StudentRepository,
	teachers repository.TeacherRepository,
	jwtService *auth.JWTService,
	sessions auth.SessionStoreInterface,
	bcryptCost int,
) AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = DefaultBcryptCost
	}
	return &authService{
		students:   students,
		teachers:   teachers,
		jwtService: jwtService,
		sessions:   sessions,
		bcryptCost: bcryptCost,
	}
}

// SignupStudent registers a student and issues its first session token.
func (s *authService) SignupStudent(ctx context.Context, in StudentSignup) (*model.Student, string, error) {
	if err := checkPasswordLength(in.Password); err != nil {
		return nil, "", err
	}

	existing, err := s.students.FindByEmailOrRollnumber(ctx, in.Email, in.Rollnumber)
	if err == nil && existing != nil {
		return nil, "", apperrors.Duplicate(msgDuplicateStudent)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check student existence: %w", err)
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	student := &model.Student{
		Fullname:     in.Fullname,
		Email:        in.Email,
		Mobile:       in.Mobile,
		PasswordHash: hash,
		Standard:     in.Standard,
		Division:     in.Division,
		Rollnumber:   in.Rollnumber,
	}
	if err := s.students.Create(ctx, student); err != nil {
		// The unique indexes settle races the pre-check above cannot.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.Duplicate(msgDuplicateStudent)
		}
		return nil, "", fmt.Errorf("create student: %w", err)
	}

	token, err := s.issue(ctx, student.ID, model.KindStudent)
	if err != nil {
		return nil, "", err
	}
	return student, token, nil
}

// SignupTeacher registers a teacher and issues its first session token.
func (s *authService) SignupTeacher(ctx context.Context, in TeacherSignup) (*model.Teacher, string, error) {
	if err := checkPasswordLength(in.Password); err != nil {
		return nil, "", err
	}

	existing, err := s.teachers.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, "", apperrors.Duplicate(msgDuplicateTeacher)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check teacher existence: %w", err)
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	teacher := &model.Teacher{
		Fullname:     in.Fullname,
		Email:        in.Email,
		Mobile:       in.Mobile,
		PasswordHash: hash,
	}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.Duplicate(msgDuplicateTeacher)
		}
		return nil, "", fmt.Errorf("create teacher: %w", err)
	}

	token, err := s.issue(ctx, teacher.ID, model.KindTeacher)
	if err != nil {
		return nil, "", err
	}
	return teacher, token, nil
}

// LoginStudent verifies credentials and issues a new session token.
func (s *authService) LoginStudent(ctx context.Context, email, password string) (*model.Student, string, error) {
	student, err := s.students.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find student: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.issue(ctx, student.ID, model.KindStudent)
	if err != nil {
		return nil, "", err
	}
	return student, token, nil
}

// LoginTeacher verifies credentials and issues a new session token.
func (s *authService) LoginTeacher(ctx context.Context, email, password string) (*model.Teacher, string, error) {
	teacher, err := s.teachers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find teacher: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.issue(ctx, teacher.ID, model.KindTeacher)
	if err != nil {
		return nil, "", err
	}
	return teacher, token, nil
}

// Logout revokes every session row carrying token. Already revoked is fine.
func (s *authService) Logout(ctx context.Context, kind model.PrincipalKind, token string) error {
	if _, err := s.sessions.Revoke(ctx, kind, token); err != nil {
		return err
	}
	return nil
}

// Authenticate resolves verified claims to the principal owning an active session.
func (s *authService) Authenticate(ctx context.Context, kind model.PrincipalKind, claims *auth.Claims, token string) (*Principal, error) {
	id, ok := claims.PrincipalID(kind)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	if _, err := s.sessions.FindActive(ctx, kind, token); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	principal := &Principal{Kind: kind, ID: id}
	switch kind {
	case model.KindStudent:
		student, err := s.students.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrStudentNotFound
			}
			return nil, fmt.Errorf("find student: %w", err)
		}
		principal.Student = student
	case model.KindTeacher:
		teacher, err := s.teachers.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeacherNotFound
			}
			return nil, fmt.Errorf("find teacher: %w", err)
		}
		principal.Teacher = teacher
	}
	return principal, nil
}

// checkPasswordLength rejects passwords bcrypt cannot hash. Multi-byte
// passwords can pass a 72 character limit and still exceed 72 bytes.
func checkPasswordLength(password string) error {
	if len(password) > maxPasswordBytes {
		return apperrors.NewValidationError([]apperrors.FieldError{{Field: "password", Message: msgPasswordTooLong}})
	}
	return nil
}

func (s *authService) hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// issue signs a token and records its session with the token's own expiry.
func (s *authService) issue(ctx context.Context, id uint, kind model.PrincipalKind) (string, error) {
	token, expiresAt, err := s.jwtService.GenerateToken(id, kind)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	if err := s.sessions.Record(ctx, id, kind, token, expiresAt); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}
