package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/poscustomers/internal/errors"
	"github.com/umalmyha/poscustomers/internal/validation"
)

type errorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorHandler builds echo HTTPErrorHandler which converts application errors to responses
func ErrorHandler(e *echo.Echo, logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body, ok := errorResponseFor(err)
		if !ok {
			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) {
				logger.WithField("path", c.Request().URL.Path).Errorf("unhandled error - %v", err)
				err = echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
			}
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		var resErr error
		if c.Request().Method == http.MethodHead {
			resErr = c.NoContent(code)
		} else {
			resErr = c.JSON(code, body)
		}

		if resErr != nil {
			logger.Errorf("failed to send error response - %v", resErr)
		}
	}
}

func errorResponseFor(err error) (int, *errorResponse, bool) {
	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		return http.StatusBadRequest, &errorResponse{Message: "invalid payload", Details: pldErr}, true
	}

	var validationErr *apperrors.ValidationErr
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, &errorResponse{Message: validationErr.Error(), Details: validationErr}, true
	}

	var notFoundErr *apperrors.EntryNotFoundErr
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, &errorResponse{Message: notFoundErr.Error()}, true
	}

	var authErr *apperrors.AuthErr
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized, &errorResponse{Message: authErr.Error()}, true
	}

	return 0, nil, false
}
