package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/auth"
	"github.com/nfrund/courseboard/internal/domain"
	"github.com/nfrund/courseboard/internal/middleware"
)

// setupErrorHandling installs an error handler that logs unhandled errors
// with a stack trace and maps domain errors to status codes.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			if he.Code >= http.StatusInternalServerError {
				logger.Error("HTTP error", "error", err, "path", c.Request().URL.Path)
			}
		case errors.Is(err, domain.ErrUnauthenticated):
			_ = c.Redirect(http.StatusSeeOther, auth.LoginPath)
			return
		case errors.Is(err, domain.ErrNotFound):
			he = echo.NewHTTPError(http.StatusNotFound, "Not found")
		default:
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
			he = echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(he.Code)
			return
		}
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		_ = c.String(he.Code, msg)
	}
}
