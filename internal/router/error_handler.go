package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "deafso/internal/errors"
)

// MySQL server error numbers surfaced by the driver.
const (
	mysqlBadNull         = 1048
	mysqlDuplicateEntry  = 1062
	mysqlNoReferencedRow = 1452
)

// HTTPErrorHandler writes every error as the failure envelope. With debug
// set the underlying error is echoed in the stack field.
func HTTPErrorHandler(debug bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		httpErr := normalize(err)
		if httpErr.StatusCode >= http.StatusInternalServerError {
			c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		}

		body := httpErr.ToResponse()
		if debug && httpErr.StatusCode >= http.StatusInternalServerError {
			body.Stack = fmt.Sprintf("%+v", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(httpErr.StatusCode)
		} else {
			err = c.JSON(httpErr.StatusCode, body)
		}
		if err != nil {
			c.Logger().Error(err)
		}
	}
}

func normalize(err error) *apperrors.HTTPError {
	var (
		appErr   *apperrors.HTTPError
		echoErr  *echo.HTTPError
		mysqlErr *mysql.MySQLError
	)
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.As(err, &echoErr):
		return fromEcho(echoErr)
	case errors.As(err, &mysqlErr):
		return fromMySQL(mysqlErr)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.NewHTTPError(http.StatusBadRequest, apperrors.MessageDuplicateField, "DUPLICATE_FIELD")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.NewHTTPError(http.StatusBadRequest, "Referenced record does not exist", "FOREIGN_KEY")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NewHTTPError(http.StatusNotFound, "Resource not found", "NOT_FOUND")
	default:
		return apperrors.MapErrorToHTTP(err)
	}
}

func fromEcho(he *echo.HTTPError) *apperrors.HTTPError {
	switch he.Code {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return apperrors.NewHTTPError(http.StatusNotFound, apperrors.MessageRouteNotFound, "ROUTE_NOT_FOUND")
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return apperrors.NewHTTPError(http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	case http.StatusRequestEntityTooLarge:
		return apperrors.NewHTTPError(he.Code, "Request body too large", "BODY_TOO_LARGE")
	}
	if he.Code >= http.StatusInternalServerError {
		return apperrors.NewInternalError(he)
	}
	return apperrors.NewHTTPError(he.Code, fmt.Sprint(he.Message), "HTTP_ERROR")
}

func fromMySQL(me *mysql.MySQLError) *apperrors.HTTPError {
	switch me.Number {
	case mysqlDuplicateEntry:
		return apperrors.NewHTTPError(http.StatusBadRequest, apperrors.MessageDuplicateField, "DUPLICATE_FIELD")
	case mysqlBadNull:
		return apperrors.NewHTTPError(http.StatusBadRequest, "Please provide all required fields", "MISSING_FIELD")
	case mysqlNoReferencedRow:
		return apperrors.NewHTTPError(http.StatusBadRequest, "Referenced record does not exist", "FOREIGN_KEY")
	}
	return apperrors.NewInternalError(me)
}
