package ports

import (
	"context"

	"github.com/minicrm/crm-system/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// ListByUser returns the user's accounts, newest first.
	ListByUser(ctx context.Context, userID int64) ([]domain.Account, error)
	Create(ctx context.Context, userID int64, name string) (*domain.Account, error)
}
