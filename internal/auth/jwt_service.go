package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "deafso/internal/errors"
	"deafso/internal/model"
)

// DefaultTokenExpiry is the validity window used when none is configured.
// It bounds both the token's exp claim and the session row's expiry.
const DefaultTokenExpiry = 24 * time.Hour

// Claims represents JWT claims. Exactly one of StudentID and TeacherID is set.
type Claims struct {
	StudentID *uint `json:"studentId,omitempty"`
	TeacherID *uint `json:"teacherId,omitempty"`
	jwt.RegisteredClaims
}

// PrincipalID returns the id carried for kind, if any.
func (c *Claims) PrincipalID(kind model.PrincipalKind) (uint, bool) {
	switch kind {
	case model.KindStudent:
		if c.StudentID != nil {
			return *c.StudentID, true
		}
	case model.KindTeacher:
		if c.TeacherID != nil {
			return *c.TeacherID, true
		}
	}
	return 0, false
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret and validity window.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenExpiry
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the validity window applied to issued tokens.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

// GenerateToken signs a token for the principal and returns it together with
// the expiry embedded in it, so callers can persist the same instant.
func (s *JWTService) GenerateToken(principalID uint, kind model.PrincipalKind) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	id := principalID
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			// jti keeps two tokens issued within the same second distinct.
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	switch kind {
	case model.KindStudent:
		claims.StudentID = &id
	case model.KindTeacher:
		claims.TeacherID = &id
	default:
		return "", time.Time{}, fmt.Errorf("unknown principal kind %q", kind)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	// NumericDate truncates to seconds; report what the token actually carries.
	return token, claims.ExpiresAt.Time, nil
}

// ValidateToken validates a JWT token and returns the claims.
// Failures are apperrors.ErrTokenExpired or apperrors.ErrInvalidToken.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
