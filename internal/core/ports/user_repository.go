package ports

import (
	"context"

	"github.com/minicrm/crm-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// FindByID returns domain.ErrUserNotFound when no row exists.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// UpgradeToPro unconditionally sets the plan to "pro". Updating a user
	// that is already pro, or absent, is a no-op.
	UpgradeToPro(ctx context.Context, id int64) error
}
