package router

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "deafso/internal/errors"
)

const msgPasswordTooLong = "Password must be at most 72 bytes long"

// fieldMessages holds client messages keyed by "field.tag", falling back to "field".
var fieldMessages = map[string]string{
	"fullname":          "Full name must be between 2 and 255 characters",
	"email":             "Please provide a valid email address",
	"mobile":            "Mobile number must be 10 digits",
	"password":          "Password must be at least 6 characters long",
	"password.required": "Password is required",
	"password.max":      msgPasswordTooLong,
	"standard":          "Standard must be between 1 and 12",
	"division":          "Division must be between 1 and 5 characters",
	"rollnumber":        "Roll number must be between 1 and 20 characters",
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator reports fields by their JSON names.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe.Field(), fe.Tag()),
		})
	}
	return apperrors.NewValidationError(fields)
}

func fieldMessage(field, tag string) string {
	if msg, ok := fieldMessages[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return field + " is invalid"
}
