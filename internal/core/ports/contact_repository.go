package ports

import (
	"context"

	"github.com/minicrm/crm-system/internal/core/domain"
)

// ContactFilter scopes a contact listing. UserID is always enforced;
// AccountID additionally narrows to one account when non-nil.
type ContactFilter struct {
	UserID    int64
	AccountID *int64
}

// ContactRepository defines persistence operations for contacts. Every
// query is conditioned on the owning user id; ownership is never checked
// by a separate layer.
type ContactRepository interface {
	// List returns matching contacts newest first, each joined with the
	// name of the associated account when one exists.
	List(ctx context.Context, filter ContactFilter) ([]domain.ContactWithAccount, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	// Create inserts the contact and fills in its generated ID and CreatedAt.
	Create(ctx context.Context, contact *domain.Contact) error
	// Update rewrites name, email and account association for the row
	// matching both contact.ID and contact.UserID, filling in CreatedAt.
	// Returns domain.ErrContactNotFound when no row matched.
	Update(ctx context.Context, contact *domain.Contact) error
	// Delete removes the row matching both id and userID. Returns
	// domain.ErrContactNotFound when no row matched.
	Delete(ctx context.Context, userID, id int64) error
}
