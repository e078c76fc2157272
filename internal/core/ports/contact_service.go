package ports

import (
	"context"

	"github.com/minicrm/crm-system/internal/core/domain"
)

// CreateContactInput carries all data needed to create a contact.
// AccountID is optional and is not verified against account ownership.
type CreateContactInput struct {
	UserID    int64
	Name      string
	Email     string
	AccountID *int64
}

// UpdateContactInput carries a full rewrite of one contact's mutable fields.
type UpdateContactInput struct {
	UserID    int64
	ContactID int64
	Name      string
	Email     string
	AccountID *int64
}

// ContactService defines use-case operations for contacts.
type ContactService interface {
	List(ctx context.Context, userID int64, accountID *int64) ([]domain.ContactWithAccount, error)
	// Create enforces, in order: user existence, the free-plan contact
	// quota, then field validation.
	Create(ctx context.Context, input CreateContactInput) (*domain.Contact, error)
	Update(ctx context.Context, input UpdateContactInput) (*domain.Contact, error)
	Delete(ctx context.Context, userID, contactID int64) error
}
