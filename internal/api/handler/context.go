package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/minicrm/crm-system/internal/core/domain"
)

// ctxUserID returns the acting user id injected by the Identity
// middleware. The middleware always sets it; the demo default covers
// handlers exercised directly (tests) without the middleware chain.
func ctxUserID(c echo.Context) int64 {
	if id, ok := c.Get("user_id").(int64); ok && id > 0 {
		return id
	}
	return domain.DefaultUserID
}
