package rest

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"user-api/app/rest/handlers"
	apperrors "user-api/app/utils/errors"
)

// NewHTTPErrorHandler returns the centralized error-translation stage:
// every error escaping a handler or middleware is mapped here to a status
// code and envelope. Internal error details are only exposed outside
// production.
func NewHTTPErrorHandler(logger *slog.Logger, isProduction bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if appErr, ok := apperrors.AsAppError(err); ok {
			message := appErr.Message
			if appErr.StatusCode >= http.StatusInternalServerError {
				logger.Error("request failed",
					"code", appErr.Code,
					"error", err,
					"path", c.Request().URL.Path)
				message = "Internal server error"
				if !isProduction && appErr.Cause != nil {
					message = fmt.Sprintf("Internal server error: %v", appErr.Cause)
				}
			}
			if writeErr := handlers.SendError(c, appErr.StatusCode, message, appErr.Fields); writeErr != nil {
				logger.Error("failed to write error response", "error", writeErr)
			}
			return
		}

		if httpErr, ok := err.(*echo.HTTPError); ok {
			message := fmt.Sprintf("%v", httpErr.Message)
			if httpErr.Code == http.StatusNotFound {
				message = fmt.Sprintf("Route %s not found", c.Request().URL.Path)
			}
			if writeErr := handlers.SendError(c, httpErr.Code, message, nil); writeErr != nil {
				logger.Error("failed to write error response", "error", writeErr)
			}
			return
		}

		logger.Error("unhandled error", "error", err, "path", c.Request().URL.Path)
		message := "Internal server error"
		if !isProduction {
			message = fmt.Sprintf("Internal server error: %v", err)
		}
		if writeErr := handlers.SendError(c, http.StatusInternalServerError, message, nil); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
