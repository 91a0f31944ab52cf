package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateCredential is returned when signup collides with an existing principal.
	ErrDuplicateCredential = errors.New("duplicate credential")
	// ErrInvalidCredentials is returned for an unknown email or a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthenticated is returned when a request carries no usable bearer token.
	ErrUnauthenticated = errors.New("no token provided")
	// ErrInvalidToken is returned when a token fails signature or claim checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned when a token's embedded expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrSessionNotFound is returned when no unexpired session row matches the token.
	ErrSessionNotFound = errors.New("session not found or expired")
	// ErrStudentNotFound is returned when a student id does not resolve.
	ErrStudentNotFound = errors.New("student not found")
	// ErrTeacherNotFound is returned when a teacher id does not resolve.
	ErrTeacherNotFound = errors.New("teacher not found")
	// ErrSubjectNotFound is returned when a subject id does not resolve.
	ErrSubjectNotFound = errors.New("subject not found")
)

// Client-facing messages. Authentication failures share one status and
// differ only here.
const (
	MessageInvalidCredentials = "Invalid email or password"
	MessageNoToken            = "Access denied. No token provided."
	MessageInvalidToken       = "Invalid token."
	MessageTokenExpired       = "Token expired."
	MessageSessionNotFound    = "Invalid or expired token."
	MessageRouteNotFound      = "Route not found"
	MessageDuplicateField     = "Duplicate field value entered"

	messageInternal   = "Internal server error"
	messageValidation = "Validation failed"
)

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    interface{}  `json:"data,omitempty"`
	Token   string       `json:"token,omitempty"`
	Count   *int         `json:"count,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Stack   string       `json:"stack,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Errors     []FieldError
	Internal   error
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for logging.
func (e *HTTPError) Unwrap() error {
	return e.Internal
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// NewValidationError creates a 400 carrying field-level messages.
func NewValidationError(fields []FieldError) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusBadRequest,
		Message:    messageValidation,
		Code:       "VALIDATION_FAILED",
		Errors:     fields,
	}
}

// NewInternalError wraps an unexpected failure without leaking it to the client.
func NewInternalError(cause error) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusInternalServerError,
		Message:    messageInternal,
		Code:       "INTERNAL_ERROR",
		Internal:   cause,
	}
}

// ToResponse converts an HTTPError to the failure envelope.
func (e *HTTPError) ToResponse() Response {
	return Response{
		Success: false,
		Message: e.Message,
		Errors:  e.Errors,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var (
		httpErr *HTTPError
		dupErr  *duplicateError
	)
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &dupErr):
		return NewHTTPError(http.StatusBadRequest, dupErr.message, "DUPLICATE_CREDENTIAL")
	case errors.Is(err, ErrDuplicateCredential):
		return NewHTTPError(http.StatusBadRequest, MessageDuplicateField, "DUPLICATE_CREDENTIAL")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, MessageInvalidCredentials, "INVALID_CREDENTIALS")
	case errors.Is(err, ErrTokenExpired):
		return NewHTTPError(http.StatusUnauthorized, MessageTokenExpired, "TOKEN_EXPIRED")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, MessageInvalidToken, "INVALID_TOKEN")
	case errors.Is(err, ErrSessionNotFound):
		return NewHTTPError(http.StatusUnauthorized, MessageSessionNotFound, "SESSION_NOT_FOUND")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, MessageNoToken, "UNAUTHENTICATED")
	case errors.Is(err, ErrStudentNotFound):
		return NewHTTPError(http.StatusNotFound, "Student not found", "STUDENT_NOT_FOUND")
	case errors.Is(err, ErrTeacherNotFound):
		return NewHTTPError(http.StatusNotFound, "Teacher not found", "TEACHER_NOT_FOUND")
	case errors.Is(err, ErrSubjectNotFound):
		return NewHTTPError(http.StatusNotFound, "Subject not found", "SUBJECT_NOT_FOUND")
	default:
		return NewInternalError(err)
	}
}

// Duplicate wraps ErrDuplicateCredential with a client-facing message.
func Duplicate(message string) error {
	return &duplicateError{message: message}
}

type duplicateError struct {
	message string
}

func (e *duplicateError) Error() string { return e.message }

func (e *duplicateError) Is(target error) bool { return target == ErrDuplicateCredential }
