package middleware

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/minicrm/crm-system/internal/core/domain"
)

// HeaderUserID is the demo identity override header. There is no
// cryptographic verification behind it; this is a trust-the-header model
// standing in for real authentication.
const HeaderUserID = "x-user-id"

// Identity resolves the acting user id and injects it into the context
// under "user_id". A header value that parses to a positive integer wins;
// anything else falls back to the fixed demo user. There is no failure
// path: every request gets a valid id.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user_id", ResolveUserID(c.Request().Header.Get(HeaderUserID)))
			return next(c)
		}
	}
}

// ResolveUserID parses a raw header value into a user id, defaulting to
// domain.DefaultUserID for missing, malformed, zero, or negative values.
func ResolveUserID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return domain.DefaultUserID
	}
	return id
}
