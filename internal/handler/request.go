package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "deafso/internal/errors"
)

const messageInvalidBody = "Invalid request body"

// bindAndValidate decodes the body into req, applies normalize, then validates.
func bindAndValidate(c echo.Context, req interface{}, normalize func()) error {
	if err := c.Bind(req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, messageInvalidBody, "INVALID_BODY")
	}
	if normalize != nil {
		normalize()
	}
	return c.Validate(req)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, param, message string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id < 1 {
		return 0, apperrors.NewValidationError([]apperrors.FieldError{{Field: param, Message: message}})
	}
	return uint(id), nil
}

// classParams identifies a class by its path parameters.
type classParams struct {
	Standard string `json:"standard" validate:"required,oneof=1 2 3 4 5 6 7 8 9 10 11 12"`
	Division string `json:"division" validate:"required,min=1,max=5"`
}

func bindClass(c echo.Context) (classParams, error) {
	params := classParams{Standard: c.Param("standard"), Division: c.Param("division")}
	if err := c.Validate(&params); err != nil {
		return params, err
	}
	return params, nil
}

// failure maps a service error to its HTTP error, logging unexpected ones.
func failure(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	return httpErr
}
