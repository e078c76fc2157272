package domain

import "time"

// Contact is a person owned by exactly one user, optionally associated
// with one of that user's accounts. A nil AccountID means no association.
type Contact struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	AccountID *int64    `json:"account_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactWithAccount is the list view of a contact, joined with the name
// of the associated account (nil when the contact has none).
type ContactWithAccount struct {
	Contact
	AccountName *string `json:"account_name"`
}
