package middleware

import (
	"context"
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"deafso/internal/auth"
	apperrors "deafso/internal/errors"
	"deafso/internal/model"
	"deafso/internal/service"
)

const (
	claimsKey    = "claims"
	tokenKey     = "token"
	principalKey = "principal"

	messageGuardInternal = "Internal server error."
)

// TokenValidator verifies a raw bearer token.
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// Authenticator resolves verified claims to a principal with an active session.
type Authenticator interface {
	Authenticate(ctx context.Context, kind model.PrincipalKind, claims *auth.Claims, token string) (*service.Principal, error)
}

// Guard rejects requests that do not carry a live session for a principal kind.
type Guard struct {
	tokens        TokenValidator
	authenticator Authenticator
}

// NewGuard creates a new access guard.
func NewGuard(tokens TokenValidator, authenticator Authenticator) *Guard {
	return &Guard{tokens: tokens, authenticator: authenticator}
}

// Require authenticates the request as a principal of kind. On success the
// principal and raw token are available via PrincipalFrom and TokenFrom.
func (g *Guard) Require(kind model.PrincipalKind) echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := g.tokens.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			c.Set(tokenKey, token)
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return tokenError(err)
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(g.resolve(kind, next))
	}
}

func (g *Guard) resolve(kind model.PrincipalKind, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(claimsKey).(*auth.Claims)
		if !ok {
			return apperrors.NewHTTPError(http.StatusUnauthorized, apperrors.MessageInvalidToken, "INVALID_TOKEN")
		}
		token := TokenFrom(c)

		principal, err := g.authenticator.Authenticate(c.Request().Context(), kind, claims, token)
		if err != nil {
			return g.authError(c, kind, err)
		}

		c.Set(principalKey, principal)
		return next(c)
	}
}

func (g *Guard) authError(c echo.Context, kind model.PrincipalKind, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrSessionNotFound):
		return apperrors.NewHTTPError(http.StatusUnauthorized, apperrors.MessageSessionNotFound, "SESSION_NOT_FOUND")
	case errors.Is(err, apperrors.ErrInvalidToken):
		return apperrors.NewHTTPError(http.StatusUnauthorized, apperrors.MessageInvalidToken, "INVALID_TOKEN")
	case errors.Is(err, apperrors.ErrStudentNotFound), errors.Is(err, apperrors.ErrTeacherNotFound):
		// the token outlived its principal; still an authentication failure
		message := "Student not found."
		if kind == model.KindTeacher {
			message = "Teacher not found."
		}
		return apperrors.NewHTTPError(http.StatusUnauthorized, message, "PRINCIPAL_NOT_FOUND")
	default:
		c.Logger().Errorf("auth guard: %v", err)
		httpErr := apperrors.NewInternalError(err)
		httpErr.Message = messageGuardInternal
		return httpErr
	}
}

// tokenError shapes echo-jwt extraction and parse failures.
func tokenError(err error) error {
	switch {
	case errors.Is(err, apperrors.ErrTokenExpired):
		return apperrors.NewHTTPError(http.StatusUnauthorized, apperrors.MessageTokenExpired, "TOKEN_EXPIRED")
	case errors.Is(err, apperrors.ErrInvalidToken):
		return apperrors.NewHTTPError(http.StatusUnauthorized, apperrors.MessageInvalidToken, "INVALID_TOKEN")
	default:
		return apperrors.NewHTTPError(http.StatusUnauthorized, apperrors.MessageNoToken, "UNAUTHENTICATED")
	}
}

// PrincipalFrom returns the principal attached by Require.
func PrincipalFrom(c echo.Context) (*service.Principal, bool) {
	principal, ok := c.Get(principalKey).(*service.Principal)
	return principal, ok && principal != nil
}

// TokenFrom returns the raw bearer token attached by Require.
func TokenFrom(c echo.Context) string {
	token, _ := c.Get(tokenKey).(string)
	return token
}
