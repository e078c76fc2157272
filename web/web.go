// Package web embeds the single-page client so the API binary serves a
// working UI without a separate frontend build. Cross-origin clients (the
// dev server the CORS origin points at) use the same API unchanged.
package web

import (
	"embed"

	"github.com/labstack/echo/v4"
)

//go:embed static
var assets embed.FS

// Register mounts the embedded client at the site root. Registered API
// routes always take precedence over the static wildcard.
func Register(e *echo.Echo) {
	e.StaticFS("/", echo.MustSubFS(assets, "static"))
}
