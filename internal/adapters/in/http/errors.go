package http

import (
	"errors"
	"net/http"

	"catering/internal/adapters/in/http/servers"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error taxonomy to HTTP status codes. Validation is
// checked first: an unknown menu is reported as an invalid reference, not as
// a missing order.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrTransitionIsNotAllowed):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrAccessIsDenied):
		return http.StatusForbidden
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a JSON error. Server errors are logged and answered
// with a generic message.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return ctx.JSON(code, servers.Error{Code: code, Message: "Internal server error"})
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}
