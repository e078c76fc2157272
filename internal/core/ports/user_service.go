package ports

import "context"

// Profile is the account overview returned by Me: the user row plus the
// plan quota and current contact usage.
type Profile struct {
	ID           int64
	Email        string
	Plan         string
	ContactLimit *int // nil = unlimited
	ContactsUsed int
}

// UserService defines use-case operations on the acting user.
type UserService interface {
	Me(ctx context.Context, userID int64) (*Profile, error)
	// Upgrade moves the user to the pro plan and returns the resulting
	// plan name. Idempotent.
	Upgrade(ctx context.Context, userID int64) (string, error)
}
