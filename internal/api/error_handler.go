package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/minicrm/crm-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// message field carries a human-readable hint only where the contract
// calls for one (the plan-limit rejection).
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their contract error codes and statuses.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<CODE>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Known domain errors → deterministic codes.
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, errorResponse{Error: "BAD_ID"}
	case errors.Is(err, domain.ErrNameRequired):
		return http.StatusBadRequest, errorResponse{Error: "NAME_REQUIRED"}
	case errors.Is(err, domain.ErrEmailRequired):
		return http.StatusBadRequest, errorResponse{Error: "EMAIL_REQUIRED"}
	case errors.Is(err, domain.ErrContactLimitReached):
		return http.StatusForbidden, errorResponse{
			Error:   "LIMIT_REACHED",
			Message: fmt.Sprintf("Free plan allows up to %d contacts. Upgrade to add more.", domain.FreeContactLimit),
		}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "USER_NOT_FOUND"}
	case errors.Is(err, domain.ErrContactNotFound):
		return http.StatusNotFound, errorResponse{Error: "NOT_FOUND"}
	}

	// Echo's own errors (bind failures, 404 from the router, 429 from the
	// rate limiter, ...) keep their status; the code is derived from it.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: statusCode(he.Code), Message: fmt.Sprintf("%v", he.Message)}
	}

	// Unexpected error: log the real cause, return a generic envelope.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "SERVER_ERROR"}
}

// statusCode renders an HTTP status as a stable SCREAMING_SNAKE code,
// e.g. 429 → TOO_MANY_REQUESTS.
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "SERVER_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
