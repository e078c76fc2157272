package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minicrm/crm-system/internal/core/ports"
)

// UserHandler handles HTTP requests for the acting user's profile and plan.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me handles GET /me.
func (h *UserHandler) Me(c echo.Context) error {
	profile, err := h.service.Me(c.Request().Context(), ctxUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		ID:           profile.ID,
		Email:        profile.Email,
		Plan:         profile.Plan,
		ContactLimit: profile.ContactLimit,
		ContactsUsed: profile.ContactsUsed,
	})
}

// Upgrade handles POST /upgrade.
func (h *UserHandler) Upgrade(c echo.Context) error {
	plan, err := h.service.Upgrade(c.Request().Context(), ctxUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, upgradeResponse{Plan: plan})
}
