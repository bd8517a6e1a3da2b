package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// errorResponse is the canonical envelope for all API errors. Detail carries
// the underlying cause and is only populated outside production.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success":false,"message":...}.
//
// When debug is true (non-production environments) the envelope additionally
// carries the raw error text in "detail".
func NewHTTPErrorHandler(log zerolog.Logger, debug bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		resp := errorResponse{Success: false, Message: msg}
		if debug && msg != err.Error() {
			resp.Detail = err.Error()
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrOutOfStock):
		return http.StatusBadRequest, "Out of stock"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access forbidden"
	case errors.Is(err, domain.ErrSweetNotFound):
		return http.StatusNotFound, "Sweet not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong on the server"
}
