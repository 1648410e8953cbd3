package middleware

import (
	"errors"
	"net/http"

	"mediaMatcher/pkg/logger"

	jsonres "mediaMatcher/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the central echo HTTPErrorHandler: every error that
// escapes a handler becomes a consistent JSON envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	code := "INTERNAL"
	if status < http.StatusInternalServerError {
		code = "BAD_REQUEST"
	}

	if err := c.JSON(status, jsonres.Error(code, message, nil)); err != nil {
		logger.Error("failed to write error response", "error", err)
	}
}
