package handler

import (
	"time"

	"github.com/minicrm/crm-system/internal/core/domain"
)

type createAccountRequest struct {
	Name string `json:"name" validate:"notblank"`
}

type accountResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{ID: a.ID, Name: a.Name, CreatedAt: a.CreatedAt}
}
