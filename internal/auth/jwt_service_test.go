package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "deafso/internal/errors"
	"deafso/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind model.PrincipalKind
		id   uint
	}{
		{name: "student", kind: model.KindStudent, id: 7},
		{name: "teacher", kind: model.KindTeacher, id: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewJWTService("secret", time.Hour)

			token, expiresAt, err := svc.GenerateToken(tt.id, tt.kind)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 2*time.Second)

			claims, err := svc.ValidateToken(token)
			require.NoError(t, err)

			id, ok := claims.PrincipalID(tt.kind)
			assert.True(t, ok)
			assert.Equal(t, tt.id, id)
			assert.True(t, claims.ExpiresAt.Time.Equal(expiresAt))
			assert.NotEmpty(t, claims.ID)

			other := model.KindTeacher
			if tt.kind == model.KindTeacher {
				other = model.KindStudent
			}
			_, ok = claims.PrincipalID(other)
			assert.False(t, ok)
		})
	}
}

func TestGenerateTokenIsUniquePerCall(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	first, _, err := svc.GenerateToken(1, model.KindStudent)
	require.NoError(t, err)
	second, _, err := svc.GenerateToken(1, model.KindStudent)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateTokenRejectsUnknownKind(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	_, _, err := svc.GenerateToken(1, model.PrincipalKind("admin"))
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.GenerateToken(1, model.KindStudent)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenInvalid(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	foreign, _, err := NewJWTService("other-secret", time.Hour).GenerateToken(1, model.KindStudent)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret": foreign,
		"alg none":     unsigned,
		"garbage":      "not-a-jwt",
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(token)
			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		})
	}
}

func TestNewJWTServiceDefaultsTTL(t *testing.T) {
	assert.Equal(t, DefaultTokenExpiry, NewJWTService("secret", 0).TTL())
}
