package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/minicrm/crm-system/internal/core/domain"
	"github.com/minicrm/crm-system/internal/core/ports"
)

// ContactHandler handles HTTP requests for contact operations.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// List handles GET /contacts. An accountId query parameter narrows the
// listing to one account; a value that does not parse is treated as absent.
func (h *ContactHandler) List(c echo.Context) error {
	var accountID *int64
	if raw := c.QueryParam("accountId"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			accountID = &n
		}
	}

	contacts, err := h.service.List(c.Request().Context(), ctxUserID(c), accountID)
	if err != nil {
		return err
	}

	// Always render an array, never null.
	resp := make([]contactListItem, 0, len(contacts))
	for _, contact := range contacts {
		resp = append(resp, toContactListItem(contact))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /contacts.
func (h *ContactHandler) Create(c echo.Context) error {
	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	contact, err := h.service.Create(c.Request().Context(), ports.CreateContactInput{
		UserID:    ctxUserID(c),
		Name:      req.Name,
		Email:     req.Email,
		AccountID: req.AccountID.Value,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toContactResponse(contact))
}

// Update handles PUT /contacts/:id.
func (h *ContactHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.service.Update(c.Request().Context(), ports.UpdateContactInput{
		UserID:    ctxUserID(c),
		ContactID: id,
		Name:      req.Name,
		Email:     req.Email,
		AccountID: req.AccountID.Value,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactResponse(contact))
}

// Delete handles DELETE /contacts/:id.
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ctxUserID(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
