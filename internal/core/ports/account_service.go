package ports

import (
	"context"

	"github.com/minicrm/crm-system/internal/core/domain"
)

// AccountService defines use-case operations for accounts.
type AccountService interface {
	List(ctx context.Context, userID int64) ([]domain.Account, error)
	// Create stores a new account with a whitespace-trimmed name.
	Create(ctx context.Context, userID int64, name string) (*domain.Account, error)
}
